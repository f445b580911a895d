// Package batch reads word list files for bulk vocabulary import.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// WordEntry represents a word with optional translation
type WordEntry struct {
	Text        string
	Translation string
	// NeedsTranslation indicates the translation still has to be fetched
	NeedsTranslation bool
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - Word only: "chat" (will be translated to English)
// - With translation: "chat = cat" (both provided, no translation needed)
// Lines starting with '#' are comments and ignored.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []WordEntry

	for _, line := range splitLines(string(content)) {
		line = trimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check if line contains '=' for translation format
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			word := strings.TrimSpace(parts[0])
			translation := strings.TrimSpace(parts[1])

			if word != "" && translation != "" {
				// Format: "WORD = TRANSLATION" - both provided
				entries = append(entries, WordEntry{
					Text:             word,
					Translation:      translation,
					NeedsTranslation: false,
				})
			}
			// Ignore lines with an empty word or translation part
		} else {
			// Just a word - needs translation to English
			entries = append(entries, WordEntry{
				Text:             line,
				Translation:      "",
				NeedsTranslation: true,
			})
		}
	}

	return entries, nil
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	current := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current)
			current = ""
		} else if r != '\r' {
			current += string(r)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// trimSpace trims whitespace from string
func trimSpace(s string) string {
	start := 0
	end := len(s)

	// Trim from start
	for start < end && isSpace(rune(s[start])) {
		start++
	}

	// Trim from end
	for end > start && isSpace(rune(s[end-1])) {
		end--
	}

	return s[start:end]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
