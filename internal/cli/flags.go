package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	DataFile    string
	Language    string
	BatchFile   string
	AudioDir    string
	AudioFormat string
	SkipAudio   bool
	SkipIPA     bool
	DeckName    string
	AnkiCSV     bool
	Questions   int

	// OpenAI flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string

	// Gemini flags
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioFormat: "mp3",
		DeckName:    "Language Vocabulary",
		Questions:   10,
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAISpeed: 1.0,
		GeminiModel: "gemini-2.5-flash",
	}
}
