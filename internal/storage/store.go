package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

// Backend is the persistence capability the Store runs on. The default is
// a single JSON file on disk, tests substitute an in-memory one.
type Backend interface {
	// Load returns the stored document bytes, or nil when nothing has
	// been stored yet.
	Load() ([]byte, error)

	// Save replaces the stored document wholesale.
	Save(data []byte) error
}

// Store is the single source of truth for the notebook document.
type Store struct {
	backend Backend
}

// NewStore creates a store on top of the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load returns the persisted document. It never fails: a missing,
// unreadable or corrupt document degrades to the default one with a
// warning on stderr.
func (s *Store) Load() AppData {
	raw, err := s.backend.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read stored data: %v\n", err)
		return DefaultData()
	}
	if len(raw) == 0 {
		return DefaultData()
	}

	var doc AppData
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse stored data: %v\n", err)
		return DefaultData()
	}

	migrated, err := Migrate(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return DefaultData()
	}
	return migrated
}

// Save serializes and writes the whole document. Write failures are
// returned to the caller, there is no retry.
func (s *Store) Save(doc AppData) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize data: %w", err)
	}
	if err := s.backend.Save(raw); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}

// Export returns the current document as pretty-printed JSON for backup.
func (s *Store) Export() (string, error) {
	raw, err := json.MarshalIndent(s.Load(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize data: %w", err)
	}
	return string(raw), nil
}

// Import replaces the stored document with the given JSON. It returns
// false without touching existing state when the input does not parse as
// an AppData document or carries an unknown schema version.
func (s *Store) Import(jsonText string) bool {
	var doc AppData
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to import data: %v\n", err)
		return false
	}

	migrated, err := Migrate(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to import data: %v\n", err)
		return false
	}

	if err := s.Save(migrated); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to import data: %v\n", err)
		return false
	}
	return true
}

// Reset overwrites the stored document with the default one.
func (s *Store) Reset() error {
	return s.Save(DefaultData())
}
