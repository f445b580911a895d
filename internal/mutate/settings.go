package mutate

import "github.com/YannErmes/langlearn/internal/storage"

// SettingsUpdate is a partial settings change: nil fields are left
// untouched.
type SettingsUpdate struct {
	FontSize     *int
	Theme        *storage.Theme
	GeminiAPIKey *string
}

// UpdateSettings shallow-merges the given fields into the settings
// singleton.
func UpdateSettings(doc storage.AppData, patch SettingsUpdate) storage.AppData {
	if patch.FontSize != nil {
		doc.Settings.FontSize = *patch.FontSize
	}
	if patch.Theme != nil {
		doc.Settings.Theme = *patch.Theme
	}
	if patch.GeminiAPIKey != nil {
		doc.Settings.GeminiAPIKey = *patch.GeminiAPIKey
	}
	return doc
}
