package storage

// Default settings values for a fresh document.
const (
	DefaultFontSize = 16
)

// DefaultData returns the first-run document: empty collections, the
// seeded tongue twister catalog and default settings. The Gemini API key
// starts empty, the user supplies their own.
func DefaultData() AppData {
	return AppData{
		SchemaVersion:  SchemaVersion,
		Texts:          []SavedText{},
		Vocab:          []VocabEntry{},
		TongueTwisters: DefaultTongueTwisters(),
		PdfPaths:       []PdfPath{},
		Exercises:      []ExerciseSet{},
		Goals:          []WeeklyGoal{},
		Tags:           []string{},
		Settings: Settings{
			FontSize:     DefaultFontSize,
			Theme:        ThemeSystem,
			GeminiAPIKey: "",
		},
	}
}
