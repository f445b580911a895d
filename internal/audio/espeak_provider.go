package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ESpeakProvider adapts the espeak-ng engine to the Provider interface.
// It is the offline engine the notebook falls back to when OpenAI TTS is
// not reachable, so captures and tongue twister drills keep working
// without a network connection.
type ESpeakProvider struct {
	engine *ESpeak
	format string
}

// NewESpeakProvider creates an espeak-ng provider producing files in the
// given format, "mp3" or "wav". An empty format means mp3.
func NewESpeakProvider(config *ESpeakConfig, format string) (Provider, error) {
	engine, err := New(config)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = "mp3"
	}
	return &ESpeakProvider{engine: engine, format: format}, nil
}

// GenerateAudio synthesizes text into outputFile. The file extension
// selects the container; when the path has none, the configured format
// decides and the matching extension is appended.
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(outputFile))
	if ext == "" {
		ext = "." + p.format
		outputFile += ext
	}

	switch ext {
	case ".wav":
		return p.engine.GenerateAudio(text, outputFile)
	case ".mp3":
		return p.engine.GenerateMP3(text, outputFile)
	default:
		return fmt.Errorf("unsupported audio format %q", ext)
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}

// espeakVoiceFor maps a studied-language name to an espeak-ng voice
// code. Unknown languages fall back to English rather than failing the
// capture.
func espeakVoiceFor(language string) string {
	switch strings.ToLower(language) {
	case "french":
		return "fr"
	case "spanish":
		return "es"
	case "german":
		return "de"
	case "italian":
		return "it"
	case "portuguese":
		return "pt"
	case "russian":
		return "ru"
	case "bulgarian":
		return "bg"
	case "japanese":
		return "ja"
	default:
		return "en"
	}
}
