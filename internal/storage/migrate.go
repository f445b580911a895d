package storage

import "fmt"

// SchemaVersion is the current document schema version. Documents exported
// by the old browser app carry no version field and decode as version 0.
const SchemaVersion = 1

// Migrate upgrades a decoded document to the current schema version.
// Version 0 documents (legacy browser exports) get a version stamp, the
// seeded twister catalog if it is missing, and default settings for fields
// the old app left unset. Documents from a newer schema are rejected.
func Migrate(doc AppData) (AppData, error) {
	switch doc.SchemaVersion {
	case 0:
		doc.SchemaVersion = SchemaVersion
		if len(doc.TongueTwisters) == 0 {
			doc.TongueTwisters = DefaultTongueTwisters()
		}
		if doc.Settings.FontSize == 0 {
			doc.Settings.FontSize = DefaultFontSize
		}
		if doc.Settings.Theme == "" {
			doc.Settings.Theme = ThemeSystem
		}
		return normalize(doc), nil
	case SchemaVersion:
		return normalize(doc), nil
	default:
		return doc, fmt.Errorf("unsupported schema version %d (this build understands up to %d)", doc.SchemaVersion, SchemaVersion)
	}
}

// normalize replaces nil collections with empty ones so callers can range
// and append without nil checks. JSON round-trips stay stable either way.
func normalize(doc AppData) AppData {
	if doc.Texts == nil {
		doc.Texts = []SavedText{}
	}
	if doc.Vocab == nil {
		doc.Vocab = []VocabEntry{}
	}
	if doc.TongueTwisters == nil {
		doc.TongueTwisters = []TongueTwister{}
	}
	if doc.PdfPaths == nil {
		doc.PdfPaths = []PdfPath{}
	}
	if doc.Exercises == nil {
		doc.Exercises = []ExerciseSet{}
	}
	if doc.Goals == nil {
		doc.Goals = []WeeklyGoal{}
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}
