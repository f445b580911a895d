package testutil

import (
	"encoding/json"
	"testing"

	"github.com/YannErmes/langlearn/internal/storage"
)

// MemoryBackend is an in-memory storage.Backend for tests.
type MemoryBackend struct {
	Data    []byte
	LoadErr error
	SaveErr error
	Saves   int
}

// Load returns the stored bytes, or nil when nothing has been saved.
func (b *MemoryBackend) Load() ([]byte, error) {
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	return b.Data, nil
}

// Save replaces the stored bytes and counts the call.
func (b *MemoryBackend) Save(data []byte) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.Data = append([]byte(nil), data...)
	b.Saves++
	return nil
}

// NewMemoryStore returns a store backed by memory, pre-seeded with the
// given document.
func NewMemoryStore(t *testing.T, doc storage.AppData) (*storage.Store, *MemoryBackend) {
	t.Helper()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to serialize sample document: %v", err)
	}
	backend := &MemoryBackend{Data: raw}
	return storage.NewStore(backend), backend
}
