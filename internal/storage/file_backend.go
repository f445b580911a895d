package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores the document as a single JSON file. Writes go through
// a temp file and rename so a crash mid-write cannot leave a half-written
// document behind.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend for the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// DefaultDataPath returns the default location of the notebook document,
// ~/.local/state/langlearn/appdata.json.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "appdata.json")
	}
	return filepath.Join(home, ".local", "state", "langlearn", "appdata.json")
}

// Path returns the backing file path.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the stored document. A missing file is not an error, it just
// means nothing has been stored yet.
func (b *FileBackend) Load() ([]byte, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Save writes the document atomically. The file is 0600 since the document
// carries the user's API key.
func (b *FileBackend) Save(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".appdata-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set data file permissions: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
