package audio

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedProvider records the texts it was asked to speak and fails on
// demand, standing in for the real engines.
type scriptedProvider struct {
	name        string
	generateErr error
	unavailable error
	spoken      []string
}

func (s *scriptedProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	s.spoken = append(s.spoken, text)
	return s.generateErr
}

func (s *scriptedProvider) Name() string { return s.name }

func (s *scriptedProvider) IsAvailable() error { return s.unavailable }

func TestDefaultProviderConfig(t *testing.T) {
	config := DefaultProviderConfig()

	if config.Provider != "openai" || config.OutputFormat != "mp3" {
		t.Errorf("Unexpected provider defaults: %s/%s", config.Provider, config.OutputFormat)
	}
	if config.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("Default model = %s, want gpt-4o-mini-tts", config.OpenAIModel)
	}
	if config.OpenAIVoice != "alloy" || config.OpenAISpeed != 1.0 {
		t.Errorf("Unexpected voice defaults: %s at %.2f", config.OpenAIVoice, config.OpenAISpeed)
	}
	if !strings.Contains(config.OpenAIInstruction, "language learners") {
		t.Errorf("Default instruction should target language learners, got %q", config.OpenAIInstruction)
	}
}

func TestDefaultInstruction(t *testing.T) {
	generic := defaultInstruction("")
	if !strings.Contains(generic, "native") {
		t.Errorf("Generic instruction should ask for native phonetics, got %q", generic)
	}

	french := defaultInstruction("French")
	if !strings.Contains(french, "French") {
		t.Errorf("Instruction should name the studied language, got %q", french)
	}
	if french == generic {
		t.Error("Naming a language should change the instruction")
	}
}

func TestNewProviderErrors(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		errMsg string
	}{
		{
			name:   "nil config defaults to openai without a key",
			config: nil,
			errMsg: "OpenAI API key is required",
		},
		{
			name:   "openai without key",
			config: &Config{Provider: "openai", Language: "French"},
			errMsg: "OpenAI API key is required",
		},
		{
			name:   "unknown provider",
			config: &Config{Provider: "festival"},
			errMsg: "unknown audio provider: festival",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProvider(tt.config); err == nil || err.Error() != tt.errMsg {
				t.Errorf("NewProvider() error = %v, want %q", err, tt.errMsg)
			}
		})
	}
}

func TestNewProviderFillsInstruction(t *testing.T) {
	config := &Config{Provider: "openai", Language: "Bulgarian", OpenAIKey: "test-key"}
	if _, err := NewProvider(config); err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if !strings.Contains(config.OpenAIInstruction, "Bulgarian") {
		t.Errorf("Expected a Bulgarian voice instruction, got %q", config.OpenAIInstruction)
	}

	config = &Config{Provider: "openai", OpenAIKey: "test-key", OpenAIInstruction: "Whisper."}
	if _, err := NewProvider(config); err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	if config.OpenAIInstruction != "Whisper." {
		t.Errorf("Explicit instruction must not be overwritten, got %q", config.OpenAIInstruction)
	}
}

func TestFallbackSkippedWhenPrimaryWorks(t *testing.T) {
	primary := &scriptedProvider{name: "openai"}
	offline := &scriptedProvider{name: "espeak-ng"}
	chain := NewProviderWithFallback(primary, offline)

	if err := chain.GenerateAudio(context.Background(), "écureuil", "ecureuil.mp3"); err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}
	if len(primary.spoken) != 1 || primary.spoken[0] != "écureuil" {
		t.Errorf("Primary should have spoken the word once, got %v", primary.spoken)
	}
	if len(offline.spoken) != 0 {
		t.Errorf("Fallback should stay idle, got %v", offline.spoken)
	}
}

func TestFallbackSpeaksWhenPrimaryFails(t *testing.T) {
	twister := "Les chaussettes de l'archiduchesse sont-elles sèches ?"
	primary := &scriptedProvider{name: "openai", generateErr: errors.New("quota exceeded")}
	offline := &scriptedProvider{name: "espeak-ng"}
	chain := NewProviderWithFallback(primary, offline)

	if err := chain.GenerateAudio(context.Background(), twister, "twister.mp3"); err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}
	if len(offline.spoken) != 1 || offline.spoken[0] != twister {
		t.Errorf("Fallback should have received the twister verbatim, got %v", offline.spoken)
	}

	offline.generateErr = errors.New("espeak-ng is not installed")
	if err := chain.GenerateAudio(context.Background(), twister, "twister.mp3"); err == nil {
		t.Error("Expected an error when both engines fail")
	}
}

func TestFallbackName(t *testing.T) {
	chain := NewProviderWithFallback(
		&scriptedProvider{name: "openai"},
		&scriptedProvider{name: "espeak-ng"},
	)

	if got := chain.Name(); got != "openai (fallback: espeak-ng)" {
		t.Errorf("Name() = %q", got)
	}
}

func TestFallbackAvailability(t *testing.T) {
	tests := []struct {
		name     string
		primary  error
		fallback error
		wantErr  bool
	}{
		{name: "both available"},
		{name: "only fallback available", primary: errors.New("no key")},
		{name: "only primary available", fallback: errors.New("not installed")},
		{
			name:     "neither available",
			primary:  errors.New("no key"),
			fallback: errors.New("not installed"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewProviderWithFallback(
				&scriptedProvider{name: "openai", unavailable: tt.primary},
				&scriptedProvider{name: "espeak-ng", unavailable: tt.fallback},
			)
			if err := chain.IsAvailable(); (err != nil) != tt.wantErr {
				t.Errorf("IsAvailable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
