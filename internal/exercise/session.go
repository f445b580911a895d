package exercise

import (
	"context"
	"fmt"
	"sync"

	"github.com/YannErmes/langlearn/internal/storage"
)

// ErrSuperseded is returned when a newer generation run was started
// before this one finished. The stale result is discarded so it can
// never overwrite a later one.
var ErrSuperseded = fmt.Errorf("generation superseded by a newer request")

// Session serializes generation runs for one consumer. Each run takes a
// token; only the run holding the newest token may deliver its result.
type Session struct {
	gen *Generator

	mu     sync.Mutex
	latest uint64
}

// NewSession wraps gen in last-request-wins semantics.
func NewSession(gen *Generator) *Session {
	return &Session{gen: gen}
}

// Generate runs one generation. If another Generate call starts while
// this one is in flight, the earlier call returns ErrSuperseded instead
// of its (now stale) questions.
func (s *Session) Generate(ctx context.Context, req Request) ([]storage.Question, error) {
	s.mu.Lock()
	s.latest++
	token := s.latest
	s.mu.Unlock()

	questions, err := s.gen.Generate(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return questions, nil
}
