package processor

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/anki"
	"github.com/YannErmes/langlearn/internal/audio"
	"github.com/YannErmes/langlearn/internal/batch"
	"github.com/YannErmes/langlearn/internal/cli"
	"github.com/YannErmes/langlearn/internal/mutate"
	"github.com/YannErmes/langlearn/internal/phonetic"
	"github.com/YannErmes/langlearn/internal/storage"
	"github.com/YannErmes/langlearn/internal/translation"
)

// Processor handles the main vocabulary capture logic
type Processor struct {
	flags            *cli.Flags
	store            *storage.Store
	translator       *translation.Translator
	translationCache *translation.TranslationCache
	phoneticFetcher  *phonetic.Fetcher
}

// NewProcessor creates a new vocabulary processor on top of the given store
func NewProcessor(flags *cli.Flags, store *storage.Store) *Processor {
	apiKey := cli.GetOpenAIKey()
	return &Processor{
		flags:            flags,
		store:            store,
		translator:       translation.NewTranslator(apiKey, flags.Language),
		translationCache: translation.NewTranslationCache(),
		phoneticFetcher:  phonetic.NewFetcher(apiKey, flags.Language),
	}
}

// ImportBatch imports multiple words from a batch file into the notebook
func (p *Processor) ImportBatch(batchFile string) error {
	entries, err := batch.ReadBatchFile(batchFile)
	if err != nil {
		return err
	}

	doc := p.store.Load()

	// Track statistics
	skippedCount := 0
	processedCount := 0
	errorCount := 0

	// Process each entry
	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Text)

		// Check if word is already in the notebook
		if hasVocab(doc, entry.Text) {
			fmt.Printf("  Skipping '%s' - already in the notebook\n", entry.Text)
			skippedCount++
			continue
		}

		updated, _, err := p.addWord(doc, entry.Text, entry.Translation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing '%s': %v\n", entry.Text, err)
			errorCount++
			// Continue with next word
			continue
		}
		doc = updated
		processedCount++
	}

	if processedCount > 0 {
		if err := p.store.Save(doc); err != nil {
			return err
		}
	}

	// Print summary
	fmt.Printf("\n=== Batch Import Summary ===\n")
	fmt.Printf("Total words: %d\n", len(entries))
	fmt.Printf("Imported: %d\n", processedCount)
	fmt.Printf("Skipped (already present): %d\n", skippedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("============================\n")

	return nil
}

// AddWord captures a single word or sentence into the notebook and
// returns the new entry id
func (p *Processor) AddWord(text, providedTranslation string) (string, error) {
	text = strings.TrimSpace(text)
	if err := audio.ValidateText(text); err != nil {
		return "", err
	}

	doc := p.store.Load()
	if hasVocab(doc, text) {
		return "", fmt.Errorf("'%s' is already in the notebook", text)
	}

	fmt.Printf("\nProcessing: %s\n", text)
	doc, id, err := p.addWord(doc, text, providedTranslation)
	if err != nil {
		return "", err
	}

	if err := p.store.Save(doc); err != nil {
		return "", err
	}
	return id, nil
}

// addWord enriches a word and appends it to the document. Translation and
// IPA failures degrade to warnings, audio failures abort the word.
func (p *Processor) addWord(doc storage.AppData, text, providedTranslation string) (storage.AppData, string, error) {
	var translationText string

	// Use provided translation if available, otherwise translate
	if providedTranslation != "" {
		translationText = providedTranslation
		fmt.Printf("  Using provided translation: %s\n", translationText)
	} else {
		fmt.Printf("  Translating to English...\n")
		var err error
		translationText, err = p.translator.TranslateWord(text)
		if err != nil {
			fmt.Printf("  Warning: Translation failed: %v\n", err)
			translationText = "" // Continue without translation
		} else {
			fmt.Printf("  Translation: %s\n", translationText)
		}
	}

	if translationText != "" {
		p.translationCache.Add(text, translationText)
	}

	// Fetch phonetic information
	var ipa string
	if !p.flags.SkipIPA {
		fmt.Printf("  Fetching IPA transcription...\n")
		var err error
		ipa, err = p.phoneticFetcher.FetchIPA(text)
		if err != nil {
			// Don't fail the whole word if phonetic info fails
			fmt.Printf("  Warning: Failed to fetch IPA: %v\n", err)
		} else {
			fmt.Printf("  IPA: /%s/\n", ipa)
		}
	}

	// Generate audio
	var audioFile string
	if !p.flags.SkipAudio {
		fmt.Printf("  Generating audio...\n")
		var err error
		audioFile, err = p.generateAudio(text)
		if err != nil {
			return doc, "", fmt.Errorf("audio generation failed: %w", err)
		}
	}

	doc, id := mutate.AddVocab(doc, mutate.AddVocabRequest{
		Text:        text,
		Type:        wordTypeFor(text),
		IPA:         ipa,
		Translation: translationText,
		AudioURL:    audioFile,
	})
	return doc, id, nil
}

// EnrichVocab fills in missing translation, IPA and audio on an existing
// notebook entry
func (p *Processor) EnrichVocab(id string) error {
	doc := p.store.Load()
	entry, ok := doc.VocabByID(id)
	if !ok {
		return fmt.Errorf("no vocabulary entry with id %s", id)
	}

	fmt.Printf("\nEnriching: %s\n", entry.Text)
	var patch mutate.VocabUpdate
	changed := false

	if entry.Translation == "" {
		fmt.Printf("  Translating to English...\n")
		translationText, err := p.translator.TranslateWord(entry.Text)
		if err != nil {
			fmt.Printf("  Warning: Translation failed: %v\n", err)
		} else {
			fmt.Printf("  Translation: %s\n", translationText)
			patch.Translation = &translationText
			changed = true
		}
	}

	if entry.IPA == "" && !p.flags.SkipIPA {
		fmt.Printf("  Fetching IPA transcription...\n")
		ipa, err := p.phoneticFetcher.FetchIPA(entry.Text)
		if err != nil {
			fmt.Printf("  Warning: Failed to fetch IPA: %v\n", err)
		} else {
			fmt.Printf("  IPA: /%s/\n", ipa)
			patch.IPA = &ipa
			changed = true
		}
	}

	if entry.AudioURL == "" && !p.flags.SkipAudio {
		fmt.Printf("  Generating audio...\n")
		audioFile, err := p.generateAudio(entry.Text)
		if err != nil {
			fmt.Printf("  Warning: Audio generation failed: %v\n", err)
		} else {
			patch.AudioURL = &audioFile
			changed = true
		}
	}

	if !changed {
		fmt.Printf("  Nothing to enrich\n")
		return nil
	}

	doc = mutate.UpdateVocab(doc, id, patch)
	return p.store.Save(doc)
}

// generateAudio generates a pronunciation audio file and returns its path
func (p *Processor) generateAudio(text string) (string, error) {
	if err := os.MkdirAll(p.flags.AudioDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	// Reuse existing audio if present
	outputFile := filepath.Join(p.flags.AudioDir,
		fmt.Sprintf("%s.%s", internal.SanitizeFilename(text), p.flags.AudioFormat))
	if _, err := os.Stat(outputFile); err == nil {
		fmt.Printf("  Audio already exists: %s\n", filepath.Base(outputFile))
		return outputFile, nil
	}

	voice := p.flags.OpenAIVoice
	if voice == "" {
		// Select a random voice
		allVoices := []string{"alloy", "ash", "ballad", "coral", "echo", "fable", "onyx", "nova", "sage", "shimmer", "verse"}
		voice = allVoices[rand.Intn(len(allVoices))]
		fmt.Printf("  Using random voice: %s\n", voice)
	}

	// Create audio provider configuration
	providerConfig := &audio.Config{
		Provider:     "openai",
		Language:     p.flags.Language,
		OutputDir:    p.flags.AudioDir,
		OutputFormat: p.flags.AudioFormat,

		// OpenAI settings
		OpenAIKey:         cli.GetOpenAIKey(),
		OpenAIModel:       p.flags.OpenAIModel,
		OpenAIVoice:       voice,
		OpenAISpeed:       p.flags.OpenAISpeed,
		OpenAIInstruction: p.flags.OpenAIInstruction,

		// Caching
		EnableCache: viper.GetBool("audio.enable_cache"),
		CacheDir:    viper.GetString("audio.cache_dir"),
	}

	// Set defaults
	if providerConfig.CacheDir == "" {
		providerConfig.CacheDir = "./.audio_cache"
	}

	// Use config file values if not overridden by flags
	if p.flags.OpenAIModel == "gpt-4o-mini-tts" && viper.IsSet("audio.openai_model") {
		providerConfig.OpenAIModel = viper.GetString("audio.openai_model")
	}
	if p.flags.OpenAIInstruction == "" && viper.IsSet("audio.openai_instruction") {
		providerConfig.OpenAIInstruction = viper.GetString("audio.openai_instruction")
	}

	// Create the audio provider
	provider, err := audio.NewProvider(providerConfig)
	if err != nil {
		return "", err
	}

	// Chain in the offline engine when it is installed so a network
	// outage does not block a capture
	offlineConfig := *providerConfig
	offlineConfig.Provider = "espeak"
	if offline, offErr := audio.NewProvider(&offlineConfig); offErr == nil {
		provider = audio.NewProviderWithFallback(provider, offline)
	}

	if err := provider.GenerateAudio(context.Background(), text, outputFile); err != nil {
		return "", err
	}
	return outputFile, nil
}

// GenerateAudioFile generates pronunciation audio for arbitrary text and
// returns the file path. Used for tongue twister drilling.
func (p *Processor) GenerateAudioFile(text string) (string, error) {
	if err := audio.ValidateText(text); err != nil {
		return "", err
	}
	return p.generateAudio(text)
}

// GenerateAnkiFile generates the Anki import file from the notebook
// vocabulary and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	doc := p.store.Load()
	if len(doc.Vocab) == 0 {
		return "", fmt.Errorf("no vocabulary to export")
	}

	// Exports land in the home directory
	outputDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Create Anki generator
	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
		MediaFolder:    p.flags.AudioDir,
		IncludeHeaders: true,
		AudioFormat:    p.flags.AudioFormat,
	})

	gen.AddVocab(doc.Vocab)

	var outputPath string
	if p.flags.AnkiCSV {
		// Generate CSV
		outputPath = filepath.Join(outputDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		// Generate APKG
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	// Print stats
	total, withAudio, withTranslation := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with audio, %d with translations)\n",
		total, withAudio, withTranslation)

	return outputPath, nil
}

// Helper functions

// hasVocab reports whether the notebook already holds an entry with the
// given text, ignoring case
func hasVocab(doc storage.AppData, text string) bool {
	for _, v := range doc.Vocab {
		if strings.EqualFold(v.Text, text) {
			return true
		}
	}
	return false
}

// wordTypeFor classifies a capture the same way the extractor does:
// anything containing whitespace is a sentence
func wordTypeFor(text string) storage.WordType {
	if strings.ContainsAny(text, " \t\n\r") {
		return storage.WordTypeSentence
	}
	return storage.WordTypeWord
}
