package storage

// WordType classifies a vocabulary entry as a single word or a longer
// sentence/phrase.
type WordType string

const (
	WordTypeWord     WordType = "word"
	WordTypeSentence WordType = "sentence"
)

// Theme is the UI theme preference stored in settings.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// SavedText is a reading passage pasted by the user.
type SavedText struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	OriginalText string `json:"originalText"`
	VideoURL     string `json:"videoUrl,omitempty"`
}

// VocabEntry is a word or sentence captured from a reading passage.
// TextID is a weak reference to the SavedText it came from: deleting the
// text does not delete the entry, lookups against a missing id just come
// back empty.
type VocabEntry struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Type        WordType `json:"type"`
	Context     string   `json:"context,omitempty"`
	IPA         string   `json:"ipa"`
	Translation string   `json:"translation"`
	Notes       string   `json:"notes"`
	AddedAt     string   `json:"addedAt"`
	AudioURL    string   `json:"audioUrl,omitempty"`
	Examples    []string `json:"examples"`
	Tags        []string `json:"tags"`
	TextID      string   `json:"textId,omitempty"`
	UsageCount  int      `json:"usageCount,omitempty"`
	// Historical usage by local calendar date (yyyy-mm-dd -> count)
	UsageHistory map[string]int `json:"usageHistory,omitempty"`
}

// Question is one generated comprehension question with an optional
// expected-answer hint.
type Question struct {
	Q string `json:"q"`
	A string `json:"a,omitempty"`
}

// ExerciseSet holds AI-generated questions for a saved text.
type ExerciseSet struct {
	ID        string     `json:"id"`
	TextID    string     `json:"textId"`
	Words     []string   `json:"words"`
	Questions []Question `json:"questions"`
	SavedAt   string     `json:"savedAt"`
}

// WeeklyGoal is a short free-text goal. The UI only surfaces the first
// three, the store does not cap the collection.
type WeeklyGoal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// TongueTwister is a pronunciation drill. The catalog is seeded on first
// run, only the practiced flag changes afterwards.
type TongueTwister struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Focus      []string `json:"focus"`
	IPA        string   `json:"ipa"`
	Difficulty int      `json:"difficulty"`
	Notes      string   `json:"notes"`
	Examples   []string `json:"examples"`
	Practiced  bool     `json:"practiced,omitempty"`
}

// PdfPath is an opaque reference to an external PDF file. The store never
// inspects the file contents.
type PdfPath struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	AddedAt string `json:"addedAt"`
}

// Settings is the singleton preferences record.
type Settings struct {
	FontSize     int    `json:"fontSize"`
	Theme        Theme  `json:"theme"`
	GeminiAPIKey string `json:"geminiApiKey"`
}

// AppData is the whole notebook document. It is persisted as one JSON blob
// and replaced wholesale on every mutation.
type AppData struct {
	SchemaVersion  int             `json:"schemaVersion"`
	Texts          []SavedText     `json:"texts"`
	Vocab          []VocabEntry    `json:"vocab"`
	TongueTwisters []TongueTwister `json:"tongueTwisters"`
	PdfPaths       []PdfPath       `json:"pdfPaths"`
	Exercises      []ExerciseSet   `json:"exercises"`
	Goals          []WeeklyGoal    `json:"goals"`
	// Global list of vocabulary tags. Entries carry their own tag lists;
	// the two are not reconciled.
	Tags     []string `json:"tags"`
	Settings Settings `json:"settings"`
}

// TextByID looks up a saved text. The second return is false when the id
// is unknown, callers must degrade gracefully (weak references survive
// parent deletion).
func (d AppData) TextByID(id string) (SavedText, bool) {
	for _, t := range d.Texts {
		if t.ID == id {
			return t, true
		}
	}
	return SavedText{}, false
}

// VocabByID looks up a vocabulary entry by id.
func (d AppData) VocabByID(id string) (VocabEntry, bool) {
	for _, v := range d.Vocab {
		if v.ID == id {
			return v, true
		}
	}
	return VocabEntry{}, false
}

// ExerciseForText returns the first exercise set linked to the given text.
// The model does not enforce one set per text, first match wins.
func (d AppData) ExerciseForText(textID string) (ExerciseSet, bool) {
	for _, e := range d.Exercises {
		if e.TextID == textID {
			return e, true
		}
	}
	return ExerciseSet{}, false
}
