package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YannErmes/langlearn/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langlearn",
		Short: "Personal language-learning notebook",
		Long: `langlearn is a personal notebook for language study.

It stores reading passages, captured vocabulary, weekly goals, tongue
twisters and AI-generated comprehension exercises in a single local
data file. Vocabulary can be enriched with translations, IPA and
pronunciation audio via OpenAI, and exported as Anki flashcards.

Examples:
  langlearn text add --title "Chapter 1" notes.txt   # Save a reading passage
  langlearn vocab add bonjour                        # Capture a word
  langlearn vocab import words.txt                   # Bulk import a word list
  langlearn exercise generate <text-id> bonjour,chat # Generate questions
  langlearn vocab export --deck-name "French"        # Export Anki deck`,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default audio directory sits next to the data file
	home, _ := os.UserHomeDir()
	defaultAudioDir := filepath.Join(home, ".local", "state", "langlearn", "audio")

	// Global flags, shared by all subcommands
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.langlearn.yaml)")
	cmd.PersistentFlags().StringVar(&flags.DataFile, "data", "", "data file (default is $HOME/.local/state/langlearn/appdata.json)")
	cmd.PersistentFlags().StringVar(&flags.Language, "language", "", "Language being studied (used in translation and audio prompts)")
	cmd.PersistentFlags().StringVar(&flags.AudioDir, "audio-dir", defaultAudioDir, "Directory for generated audio files")
	cmd.PersistentFlags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (wav or mp3)")
	cmd.PersistentFlags().BoolVar(&flags.SkipAudio, "skip-audio", false, "Skip audio generation when adding vocabulary")
	cmd.PersistentFlags().BoolVar(&flags.SkipIPA, "skip-ipa", false, "Skip IPA lookup when adding vocabulary")
	cmd.PersistentFlags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.PersistentFlags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Export legacy CSV format instead of APKG")
	cmd.PersistentFlags().IntVar(&flags.Questions, "questions", flags.Questions, "Number of questions to generate per exercise")

	// OpenAI flags
	cmd.PersistentFlags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.PersistentFlags().StringVar(&flags.OpenAIVoice, "openai-voice", "", "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.PersistentFlags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0, may be ignored by gpt-4o-mini-tts)")
	cmd.PersistentFlags().StringVar(&flags.OpenAIInstruction, "openai-instruction", "", "Voice instructions for gpt-4o-mini-tts model (e.g., 'speak slowly with a Parisian accent')")

	// Gemini flags
	cmd.PersistentFlags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for exercise generation")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("data.file", cmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("study.language", cmd.PersistentFlags().Lookup("language"))
	viper.BindPFlag("audio.directory", cmd.PersistentFlags().Lookup("audio-dir"))
	viper.BindPFlag("audio.format", cmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("audio.openai_model", cmd.PersistentFlags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.PersistentFlags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.PersistentFlags().Lookup("openai-speed"))
	viper.BindPFlag("audio.openai_instruction", cmd.PersistentFlags().Lookup("openai-instruction"))
	viper.BindPFlag("anki.deck_name", cmd.PersistentFlags().Lookup("deck-name"))
	viper.BindPFlag("exercise.questions", cmd.PersistentFlags().Lookup("questions"))
	viper.BindPFlag("gemini.model", cmd.PersistentFlags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".langlearn" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".langlearn")
	}

	// Environment variables
	viper.SetEnvPrefix("LANGLEARN")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("audio.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config.
// Callers fall back to the key stored in the notebook settings when this
// returns empty.
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini.api_key")
}
