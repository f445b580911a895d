// Package testutil provides shared helpers for package tests: an
// in-memory storage backend, sample notebook documents and small file
// assertions.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YannErmes/langlearn/internal/storage"
)

// SampleDoc returns a small populated notebook document for tests.
func SampleDoc() storage.AppData {
	doc := storage.DefaultData()
	doc.Texts = []storage.SavedText{
		{
			ID:           "text-1",
			Title:        "Chapter 1",
			Date:         "2026-01-15T10:00:00Z",
			OriginalText: "Le chat dort. Le chien joue dans le jardin.",
		},
	}
	doc.Vocab = []storage.VocabEntry{
		{
			ID:          "vocab-1",
			Text:        "chat",
			Type:        storage.WordTypeWord,
			Context:     "Le chat dort.",
			IPA:         "ʃa",
			Translation: "cat",
			AddedAt:     "2026-01-15T10:05:00Z",
			Examples:    []string{},
			Tags:        []string{},
			TextID:      "text-1",
		},
		{
			ID:       "vocab-2",
			Text:     "chien",
			Type:     storage.WordTypeWord,
			AddedAt:  "2026-01-15T10:06:00Z",
			Examples: []string{},
			Tags:     []string{},
		},
	}
	doc.Goals = []storage.WeeklyGoal{
		{ID: "goal-1", Text: "Read one chapter", CreatedAt: "2026-01-12T09:00:00Z"},
	}
	return doc
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
