package mutate

import (
	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/storage"
)

// AddTextRequest carries the caller-supplied fields of a new saved text.
type AddTextRequest struct {
	Title        string
	OriginalText string
	VideoURL     string
}

// AddText prepends a new saved text and returns the new document and the
// generated id.
func AddText(doc storage.AppData, req AddTextRequest) (storage.AppData, string) {
	text := storage.SavedText{
		ID:           internal.GenerateID(req.Title),
		Title:        req.Title,
		Date:         timestamp(),
		OriginalText: req.OriginalText,
		VideoURL:     req.VideoURL,
	}
	doc.Texts = append([]storage.SavedText{text}, doc.Texts...)
	return doc, text.ID
}

// TextUpdate is a partial update: nil fields are left untouched.
type TextUpdate struct {
	Title        *string
	OriginalText *string
	VideoURL     *string
}

// UpdateText shallow-merges the given fields into the text with the given
// id. Unknown ids are a no-op.
func UpdateText(doc storage.AppData, id string, patch TextUpdate) storage.AppData {
	texts := make([]storage.SavedText, len(doc.Texts))
	copy(texts, doc.Texts)
	for i := range texts {
		if texts[i].ID != id {
			continue
		}
		if patch.Title != nil {
			texts[i].Title = *patch.Title
		}
		if patch.OriginalText != nil {
			texts[i].OriginalText = *patch.OriginalText
		}
		if patch.VideoURL != nil {
			texts[i].VideoURL = *patch.VideoURL
		}
	}
	doc.Texts = texts
	return doc
}

// DeleteText removes the text with the given id. Dependent vocabulary
// entries and exercise sets keep their textId: the reference is weak and
// orphans are tolerated.
func DeleteText(doc storage.AppData, id string) storage.AppData {
	texts := make([]storage.SavedText, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		if t.ID != id {
			texts = append(texts, t)
		}
	}
	doc.Texts = texts
	return doc
}
