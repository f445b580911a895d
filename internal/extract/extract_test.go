package extract

import (
	"strings"
	"testing"

	"github.com/YannErmes/langlearn/internal/storage"
)

const passage = "Hello world. The cat sat on the mat. Go now!"

func TestExtractWordWithContext(t *testing.T) {
	offset := strings.Index(passage, "cat")
	res, ok := Extract(Selection{Text: "cat", NodeText: passage, Offset: offset})

	if !ok {
		t.Fatal("Expected a result")
	}
	if res.Type != storage.WordTypeWord {
		t.Errorf("Expected word classification, got %q", res.Type)
	}
	if res.Context != "The cat sat on the mat." {
		t.Errorf("Expected bounding sentence, got %q", res.Context)
	}
}

func TestExtractSentenceHasNoContext(t *testing.T) {
	res, ok := Extract(Selection{Text: "Hello world", NodeText: passage, Offset: 0})

	if !ok {
		t.Fatal("Expected a result")
	}
	if res.Type != storage.WordTypeSentence {
		t.Errorf("Expected sentence classification, got %q", res.Type)
	}
	if res.Context != "" {
		t.Errorf("Sentence selections carry no context, got %q", res.Context)
	}
}

func TestExtractEmptySelectionIsNoop(t *testing.T) {
	if _, ok := Extract(Selection{Text: "   ", NodeText: passage, Offset: 0}); ok {
		t.Error("Whitespace-only selections must be dropped")
	}
	if _, ok := Extract(Selection{}); ok {
		t.Error("Empty selections must be dropped")
	}
}

func TestExtractTrimsSelection(t *testing.T) {
	res, ok := Extract(Selection{Text: " cat ", NodeText: passage, Offset: strings.Index(passage, "cat") - 1})
	if !ok {
		t.Fatal("Expected a result")
	}
	if res.Text != "cat" {
		t.Errorf("Expected trimmed text, got %q", res.Text)
	}
	if res.Type != storage.WordTypeWord {
		t.Errorf("Trimmed single words classify as words, got %q", res.Type)
	}
}

func TestSentenceContextTable(t *testing.T) {
	tests := []struct {
		name   string
		full   string
		word   string
		expect string
	}{
		{
			name:   "first sentence, no leading terminator",
			full:   passage,
			word:   "world",
			expect: "Hello world.",
		},
		{
			name:   "last sentence, exclamation terminator",
			full:   passage,
			word:   "now",
			expect: "Go now!",
		},
		{
			name:   "no terminators at all",
			full:   "just some words here",
			word:   "some",
			expect: "just some words here",
		},
		{
			name:   "question mark bounds the sentence",
			full:   "Really? The dog barked? Maybe.",
			word:   "dog",
			expect: "The dog barked?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := strings.Index(tt.full, tt.word)
			got := sentenceContext(tt.full, offset, len(tt.word))
			if got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestSentenceContextOutOfRangeOffsets(t *testing.T) {
	if got := sentenceContext(passage, -1, 3); got != "" {
		t.Errorf("Negative offset should yield no context, got %q", got)
	}
	if got := sentenceContext(passage, len(passage), 5); got != "" {
		t.Errorf("Offset past the end should yield no context, got %q", got)
	}
	if got := sentenceContext("", 0, 0); got != "" {
		t.Errorf("Empty node text should yield no context, got %q", got)
	}
}
