package storage

import (
	"strings"
	"testing"
)

func TestExportVocabCSV(t *testing.T) {
	doc := DefaultData()
	doc.Vocab = []VocabEntry{
		{
			Text:        "cat",
			IPA:         "kæt",
			Translation: "chat",
			Notes:       "",
			Examples:    []string{"I see a cat.", "The cat ran"},
		},
	}

	csv := ExportVocabCSV(doc)
	lines := strings.Split(csv, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "text,ipa,translation,notes,examples" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != `"cat","kæt","chat","","I see a cat. | The cat ran"` {
		t.Errorf("Unexpected row: %q", lines[1])
	}
}

func TestExportVocabCSVEscapesQuotes(t *testing.T) {
	doc := DefaultData()
	doc.Vocab = []VocabEntry{{Text: `say "hello"`, Examples: []string{}}}

	csv := ExportVocabCSV(doc)
	if !strings.Contains(csv, `"say ""hello"""`) {
		t.Errorf("Quotes must be doubled per CSV rules, got: %q", csv)
	}
}

func TestExportVocabCSVEmpty(t *testing.T) {
	csv := ExportVocabCSV(DefaultData())
	if csv != "text,ipa,translation,notes,examples" {
		t.Errorf("Empty vocabulary should export just the header, got: %q", csv)
	}
}

func TestExportVocabHTML(t *testing.T) {
	doc := DefaultData()
	doc.Vocab = []VocabEntry{{
		Text:        "<cat>",
		IPA:         "kæt",
		Translation: "chat & co",
		Examples:    []string{"one", "two"},
	}}

	out := ExportVocabHTML(doc)
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Error("Expected a standalone HTML document")
	}
	if !strings.Contains(out, "&lt;cat&gt;") {
		t.Error("Cell values must be HTML-escaped")
	}
	if !strings.Contains(out, "chat &amp; co") {
		t.Error("Ampersands must be escaped")
	}
	if !strings.Contains(out, `<td class="cell examples">one<br/>two</td>`) {
		t.Error("Examples should be joined with <br/> in the examples cell")
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<th>IPA</th>") {
		t.Error("Expected an embedded vocabulary table")
	}
}
