package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/YannErmes/langlearn/internal/storage"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if opts.MediaFolder != "." {
		t.Errorf("Expected media folder '.', got '%s'", opts.MediaFolder)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}

	if opts.AudioFormat != "mp3" {
		t.Errorf("Expected audio format 'mp3', got '%s'", opts.AudioFormat)
	}
}

func TestNewGenerator(t *testing.T) {
	// Test with nil options
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	// Test with custom options
	opts := &GeneratorOptions{
		OutputPath: "custom.csv",
	}
	gen = NewGenerator(opts)
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestAddCard(t *testing.T) {
	gen := NewGenerator(nil)

	card := Card{
		Text:        "serendipity",
		Translation: "happy accident",
		IPA:         "ˌsɛrənˈdɪpɪti",
		Notes:       "test note",
	}

	gen.AddCard(card)

	if len(gen.cards) != 1 {
		t.Errorf("Expected 1 card, got %d", len(gen.cards))
	}

	if gen.cards[0].Text != "serendipity" {
		t.Errorf("Expected text 'serendipity', got '%s'", gen.cards[0].Text)
	}
}

func TestGetCards(t *testing.T) {
	gen := NewGenerator(nil)

	card1 := Card{Text: "cat"}
	card2 := Card{Text: "dog"}

	gen.AddCard(card1)
	gen.AddCard(card2)

	cards := gen.GetCards()
	if len(cards) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards))
	}

	// Test that we can modify the returned slice
	cards[0].Translation = "chat"
	if gen.cards[0].Translation != "chat" {
		t.Error("GetCards should return the actual slice, not a copy")
	}
}

func TestAddVocab(t *testing.T) {
	tempDir := t.TempDir()
	audioFile := filepath.Join(tempDir, "cat.mp3")
	os.WriteFile(audioFile, []byte("audio data"), 0644)

	gen := NewGenerator(nil)
	gen.AddVocab([]storage.VocabEntry{
		{
			Text:        "chat",
			Type:        storage.WordTypeWord,
			Translation: "cat",
			IPA:         "ʃa",
			Context:     "Le chat dort.",
			AudioURL:    audioFile,
		},
		{
			Text:     "chien",
			Type:     storage.WordTypeWord,
			AudioURL: filepath.Join(tempDir, "missing.mp3"),
		},
	})

	if len(gen.cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(gen.cards))
	}

	if gen.cards[0].Text != "chat" || gen.cards[0].Translation != "cat" || gen.cards[0].Context != "Le chat dort." {
		t.Errorf("First card fields not carried over: %+v", gen.cards[0])
	}

	if gen.cards[0].AudioFile != audioFile {
		t.Errorf("Expected existing audio file to be attached, got '%s'", gen.cards[0].AudioFile)
	}

	// Missing audio files are dropped, the card itself survives
	if gen.cards[1].AudioFile != "" {
		t.Errorf("Expected missing audio file to be skipped, got '%s'", gen.cards[1].AudioFile)
	}
}

func TestFormatAudioField(t *testing.T) {
	gen := NewGenerator(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
		{
			name:     "simple audio file",
			input:    "/path/to/word123/audio.mp3",
			expected: "[sound:audio.mp3]",
		},
		{
			name:     "bare filename",
			input:    "cat.mp3",
			expected: "[sound:cat.mp3]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gen.formatAudioField(tt.input)
			if result != tt.expected {
				t.Errorf("formatAudioField(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGenerateCSV(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})

	// Add test cards
	gen.AddCard(Card{
		Text:        "chat",
		IPA:         "ʃa",
		Translation: "cat",
		Context:     "Le chat dort.",
		Notes:       "An animal",
		AudioFile:   "/path/to/chat/audio.mp3",
	})

	gen.AddCard(Card{
		Text:        "pomme",
		Translation: "apple",
		Notes:       "A fruit",
	})

	// Generate CSV
	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatal("CSV file was not created")
	}

	// Read and verify content
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	// Check headers
	if len(records) < 1 {
		t.Fatal("CSV file is empty")
	}

	expectedHeaders := []string{"Text", "IPA", "Translation", "Context", "Notes", "Audio"}
	if len(records[0]) != len(expectedHeaders) {
		t.Errorf("Expected %d columns, got %d", len(expectedHeaders), len(records[0]))
	}

	for i, header := range expectedHeaders {
		if records[0][i] != header {
			t.Errorf("Expected header '%s' at position %d, got '%s'", header, i, records[0][i])
		}
	}

	// Check first data row
	if len(records) < 2 {
		t.Fatal("CSV file has no data rows")
	}

	if records[1][0] != "chat" {
		t.Errorf("Expected text 'chat', got '%s'", records[1][0])
	}

	if records[1][1] != "ʃa" {
		t.Errorf("Expected IPA 'ʃa', got '%s'", records[1][1])
	}

	if records[1][5] != "[sound:audio.mp3]" {
		t.Errorf("Expected audio field '[sound:audio.mp3]', got '%s'", records[1][5])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: false,
	})

	gen.AddCard(Card{
		Text: "chat",
	})

	err := gen.GenerateCSV()
	if err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	// Read and verify no headers
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected 1 record (no headers), got %d", len(records))
	}

	if records[0][0] != "chat" {
		t.Errorf("First field should be 'chat', got '%s'", records[0][0])
	}
}

func TestStats(t *testing.T) {
	gen := NewGenerator(nil)

	// Empty stats
	total, audio, translated := gen.Stats()
	if total != 0 || audio != 0 || translated != 0 {
		t.Errorf("Expected empty stats, got total=%d, audio=%d, translated=%d", total, audio, translated)
	}

	// Add cards with different fields populated
	gen.AddCard(Card{
		Text:        "chat",
		Translation: "cat",
		AudioFile:   "audio1.mp3",
	})

	gen.AddCard(Card{
		Text:      "chien",
		AudioFile: "audio2.mp3",
	})

	gen.AddCard(Card{
		Text:        "pomme",
		Translation: "apple",
	})

	gen.AddCard(Card{
		Text: "pain",
	})

	total, audio, translated = gen.Stats()
	if total != 4 {
		t.Errorf("Expected 4 total cards, got %d", total)
	}

	if audio != 2 {
		t.Errorf("Expected 2 cards with audio, got %d", audio)
	}

	if translated != 2 {
		t.Errorf("Expected 2 cards with translations, got %d", translated)
	}
}
