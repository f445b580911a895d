package mutate

import (
	"reflect"
	"testing"
	"time"

	"github.com/YannErmes/langlearn/internal/storage"
)

func TestAddVocabGeneratesIDAndTimestamp(t *testing.T) {
	doc := sampleDoc()

	got, id := AddVocab(doc, AddVocabRequest{
		Text:    "mat",
		Type:    storage.WordTypeWord,
		Context: "The cat sat on the mat.",
		TextID:  "t2",
	})

	if len(got.Vocab) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(got.Vocab))
	}
	entry := got.Vocab[0]
	if entry.ID != id || entry.ID == "" {
		t.Error("Id must be generated and returned")
	}
	if entry.AddedAt == "" {
		t.Error("AddedAt must be stamped")
	}
	if entry.Examples == nil || entry.Tags == nil {
		t.Error("Examples and tags must be initialized to empty lists")
	}
	if !reflect.DeepEqual(got.Vocab[1], doc.Vocab[0]) {
		t.Error("Existing entries must shift down unchanged")
	}
}

func TestUpdateVocabPartial(t *testing.T) {
	doc := sampleDoc()
	ipa := "kæt"
	translation := "chat"

	got := UpdateVocab(doc, "v1", VocabUpdate{IPA: &ipa, Translation: &translation})

	entry := got.Vocab[0]
	if entry.IPA != "kæt" || entry.Translation != "chat" {
		t.Errorf("Expected patched fields, got %+v", entry)
	}
	if entry.Text != "cat" || entry.TextID != "t2" || entry.AddedAt != doc.Vocab[0].AddedAt {
		t.Error("Fields not present in the patch must stay untouched")
	}
}

func TestUpdateVocabUnknownIDIsNoop(t *testing.T) {
	doc := sampleDoc()
	notes := "never applied"

	got := UpdateVocab(doc, "missing", VocabUpdate{Notes: &notes})

	if !reflect.DeepEqual(got.Vocab, doc.Vocab) {
		t.Error("Updating an unknown id must leave the document unchanged")
	}
}

func TestDeleteVocab(t *testing.T) {
	doc := sampleDoc()

	got := DeleteVocab(doc, "v1")

	if len(got.Vocab) != 0 {
		t.Errorf("Expected empty vocabulary, got %d entries", len(got.Vocab))
	}
	if !reflect.DeepEqual(got.Texts, doc.Texts) {
		t.Error("Texts must be unchanged")
	}
}

func TestMarkVocabUsedSameDay(t *testing.T) {
	restore := now
	defer func() { now = restore }()
	now = func() time.Time {
		return time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local)
	}

	doc := sampleDoc()
	doc = MarkVocabUsed(doc, "v1")
	doc = MarkVocabUsed(doc, "v1")

	entry := doc.Vocab[0]
	if entry.UsageCount != 2 {
		t.Errorf("Expected usage count 2, got %d", entry.UsageCount)
	}
	if entry.UsageHistory["2026-03-04"] != 2 {
		t.Errorf("Expected 2 uses on 2026-03-04, got %+v", entry.UsageHistory)
	}
	if len(entry.UsageHistory) != 1 {
		t.Errorf("Expected a single history key, got %+v", entry.UsageHistory)
	}
}

func TestMarkVocabUsedDifferentDays(t *testing.T) {
	restore := now
	defer func() { now = restore }()

	doc := sampleDoc()

	now = func() time.Time { return time.Date(2026, 3, 4, 23, 0, 0, 0, time.Local) }
	doc = MarkVocabUsed(doc, "v1")
	now = func() time.Time { return time.Date(2026, 3, 5, 1, 0, 0, 0, time.Local) }
	doc = MarkVocabUsed(doc, "v1")

	entry := doc.Vocab[0]
	if entry.UsageCount != 2 {
		t.Errorf("Expected usage count 2, got %d", entry.UsageCount)
	}
	if entry.UsageHistory["2026-03-04"] != 1 || entry.UsageHistory["2026-03-05"] != 1 {
		t.Errorf("Expected one use on each day, got %+v", entry.UsageHistory)
	}
}

func TestMarkVocabUsedDoesNotTouchOtherFields(t *testing.T) {
	doc := sampleDoc()

	got := MarkVocabUsed(doc, "v1")

	entry := got.Vocab[0]
	if entry.Text != "cat" || entry.Type != storage.WordTypeWord || entry.TextID != "t2" {
		t.Error("Only usage fields may change")
	}
	// The original document's entry is untouched.
	if doc.Vocab[0].UsageCount != 0 || doc.Vocab[0].UsageHistory != nil {
		t.Error("Mutators must not modify their input")
	}
}
