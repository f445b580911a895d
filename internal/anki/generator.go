package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/YannErmes/langlearn/internal/storage"
)

// Card represents a single Anki flashcard
type Card struct {
	Text        string // The studied word or sentence
	Translation string // English translation
	IPA         string // Phonetic transcription
	Context     string // Sentence the word was captured from
	Notes       string // Optional notes
	AudioFile   string // Path to audio file
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	MediaFolder    string // Folder containing media files
	IncludeHeaders bool   // Include CSV headers
	AudioFormat    string // Audio file format (mp3, wav)
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		MediaFolder:    ".",
		IncludeHeaders: true,
		AudioFormat:    "mp3",
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// AddVocab converts vocabulary entries into cards. Entries without a
// translation still become cards so the gap shows up during review.
func (g *Generator) AddVocab(entries []storage.VocabEntry) {
	for _, entry := range entries {
		card := Card{
			Text:        entry.Text,
			Translation: entry.Translation,
			IPA:         entry.IPA,
			Context:     entry.Context,
			Notes:       entry.Notes,
		}
		if entry.AudioURL != "" {
			if _, err := os.Stat(entry.AudioURL); err == nil {
				card.AudioFile = entry.AudioURL
			}
		}
		g.AddCard(card)
	}
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	// Create output file
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	// Create CSV writer
	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write headers if requested
	if g.options.IncludeHeaders {
		headers := []string{"Text", "IPA", "Translation", "Context", "Notes", "Audio"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	// Write cards
	for _, card := range g.cards {
		record := []string{
			card.Text,
			card.IPA,
			card.Translation,
			card.Context,
			card.Notes,
			g.formatAudioField(card.AudioFile),
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	return nil
}

// formatAudioField formats the audio file reference for Anki
func (g *Generator) formatAudioField(audioFile string) string {
	if audioFile == "" {
		return ""
	}

	// Get just the filename
	filename := filepath.Base(audioFile)

	// Anki audio format: [sound:filename.mp3]
	return fmt.Sprintf("[sound:%s]", filename)
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	// Create APKG generator
	apkgGen := NewAPKGGenerator(deckName)

	// Add all cards
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	// Generate the .apkg file
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio, withTranslation int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.AudioFile != "" {
			withAudio++
		}
		if card.Translation != "" {
			withTranslation++
		}
	}

	return
}
