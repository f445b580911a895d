// Package extract turns a raw text selection into a vocabulary capture:
// it classifies the selection as a single word or a sentence and, for
// words, computes the surrounding sentence as context.
package extract

import (
	"strings"
	"unicode"

	"github.com/YannErmes/langlearn/internal/storage"
)

// Selection describes a contiguous user selection inside one text node.
// NodeText is the full text of the node the selection starts in and
// Offset the byte position of the selection start within it. A selection
// spanning several nodes only sees its anchor node here, context lookup
// is best-effort by design.
type Selection struct {
	Text     string
	NodeText string
	Offset   int
}

// Result is a classified selection ready to be added to the vocabulary.
type Result struct {
	Text    string
	Type    storage.WordType
	Context string
}

// Extract classifies a selection. It reports ok=false for empty
// selections, which callers treat as a silent no-op. Single words get a
// bounding sentence context, multi-word selections get none.
func Extract(sel Selection) (Result, bool) {
	trimmed := strings.TrimSpace(sel.Text)
	if trimmed == "" {
		return Result{}, false
	}

	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return Result{Text: trimmed, Type: storage.WordTypeSentence}, true
	}

	return Result{
		Text:    trimmed,
		Type:    storage.WordTypeWord,
		Context: sentenceContext(sel.NodeText, sel.Offset, len(sel.Text)),
	}, true
}

// sentenceContext returns the sentence surrounding the selection at
// [start, start+selLen) in full: from just after the previous sentence
// terminator (or the beginning) up to and including the nearest following
// terminator (or the end), trimmed.
func sentenceContext(full string, start, selLen int) string {
	if full == "" || start < 0 || start+selLen > len(full) {
		return ""
	}

	before := full[:start]
	after := full[start+selLen:]

	sentenceStart := 0
	for _, term := range []string{".", "!", "?"} {
		if i := strings.LastIndex(before, term); i+1 > sentenceStart {
			sentenceStart = i + 1
		}
	}

	sentenceEnd := len(full)
	nearest := -1
	for _, term := range []string{".", "!", "?"} {
		if i := strings.Index(after, term); i != -1 && (nearest == -1 || i < nearest) {
			nearest = i
		}
	}
	if nearest != -1 {
		// Include the terminator itself.
		sentenceEnd = start + selLen + nearest + 1
	}

	return strings.TrimSpace(full[sentenceStart:sentenceEnd])
}
