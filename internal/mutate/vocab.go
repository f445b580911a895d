package mutate

import (
	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/storage"
)

// AddVocabRequest carries everything of a new vocabulary entry except the
// generated id and timestamp.
type AddVocabRequest struct {
	Text        string
	Type        storage.WordType
	Context     string
	IPA         string
	Translation string
	Notes       string
	AudioURL    string
	Examples    []string
	Tags        []string
	TextID      string
}

// AddVocab prepends a new vocabulary entry and returns the new document
// and the generated id.
func AddVocab(doc storage.AppData, req AddVocabRequest) (storage.AppData, string) {
	examples := req.Examples
	if examples == nil {
		examples = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	entry := storage.VocabEntry{
		ID:          internal.GenerateID(req.Text),
		Text:        req.Text,
		Type:        req.Type,
		Context:     req.Context,
		IPA:         req.IPA,
		Translation: req.Translation,
		Notes:       req.Notes,
		AddedAt:     timestamp(),
		AudioURL:    req.AudioURL,
		Examples:    examples,
		Tags:        tags,
		TextID:      req.TextID,
	}
	doc.Vocab = append([]storage.VocabEntry{entry}, doc.Vocab...)
	return doc, entry.ID
}

// VocabUpdate is a partial update: nil fields are left untouched.
type VocabUpdate struct {
	Text        *string
	Type        *storage.WordType
	Context     *string
	IPA         *string
	Translation *string
	Notes       *string
	AudioURL    *string
	TextID      *string
	Examples    []string
	Tags        []string
}

// UpdateVocab shallow-merges the given fields into the entry with the
// given id. Unknown ids are a no-op.
func UpdateVocab(doc storage.AppData, id string, patch VocabUpdate) storage.AppData {
	vocab := make([]storage.VocabEntry, len(doc.Vocab))
	copy(vocab, doc.Vocab)
	for i := range vocab {
		if vocab[i].ID != id {
			continue
		}
		if patch.Text != nil {
			vocab[i].Text = *patch.Text
		}
		if patch.Type != nil {
			vocab[i].Type = *patch.Type
		}
		if patch.Context != nil {
			vocab[i].Context = *patch.Context
		}
		if patch.IPA != nil {
			vocab[i].IPA = *patch.IPA
		}
		if patch.Translation != nil {
			vocab[i].Translation = *patch.Translation
		}
		if patch.Notes != nil {
			vocab[i].Notes = *patch.Notes
		}
		if patch.AudioURL != nil {
			vocab[i].AudioURL = *patch.AudioURL
		}
		if patch.TextID != nil {
			vocab[i].TextID = *patch.TextID
		}
		if patch.Examples != nil {
			vocab[i].Examples = patch.Examples
		}
		if patch.Tags != nil {
			vocab[i].Tags = patch.Tags
		}
	}
	doc.Vocab = vocab
	return doc
}

// DeleteVocab removes the entry with the given id.
func DeleteVocab(doc storage.AppData, id string) storage.AppData {
	vocab := make([]storage.VocabEntry, 0, len(doc.Vocab))
	for _, v := range doc.Vocab {
		if v.ID != id {
			vocab = append(vocab, v)
		}
	}
	doc.Vocab = vocab
	return doc
}

// MarkVocabUsed increments the entry's usage count and today's entry in
// its per-day usage history. No other field changes.
func MarkVocabUsed(doc storage.AppData, id string) storage.AppData {
	vocab := make([]storage.VocabEntry, len(doc.Vocab))
	copy(vocab, doc.Vocab)
	for i := range vocab {
		if vocab[i].ID != id {
			continue
		}
		vocab[i].UsageCount++

		history := make(map[string]int, len(vocab[i].UsageHistory)+1)
		for k, v := range vocab[i].UsageHistory {
			history[k] = v
		}
		history[dayKey()]++
		vocab[i].UsageHistory = history
	}
	doc.Vocab = vocab
	return doc
}
