package exercise

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// cannedGenerator returns a fixed reply and records the prompts it saw.
type cannedGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (c *cannedGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.reply, c.err
}

func TestGenerateParsesReply(t *testing.T) {
	canned := &cannedGenerator{reply: "1. Where did the cat sit?\n2. What sat on the mat?"}
	gen := NewGenerator(canned)

	questions, err := gen.Generate(context.Background(), Request{
		Passage: "The cat sat on the mat.",
		Words:   []string{"cat", "mat"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(questions))
	}
	if len(canned.prompts) != 1 || !strings.Contains(canned.prompts[0], "Target words/expressions: cat, mat") {
		t.Errorf("Prompt not built from the request: %v", canned.prompts)
	}
}

func TestGenerateRejectsEmptyWordList(t *testing.T) {
	canned := &cannedGenerator{reply: "1. unused"}
	gen := NewGenerator(canned)

	_, err := gen.Generate(context.Background(), Request{Passage: "text"})
	if err == nil {
		t.Fatal("Expected an error for an empty word list")
	}
	if len(canned.prompts) != 0 {
		t.Error("No request may be sent without target words")
	}
}

func TestGenerateSurfacesBackendError(t *testing.T) {
	canned := &cannedGenerator{err: fmt.Errorf("quota exceeded")}
	gen := NewGenerator(canned)

	_, err := gen.Generate(context.Background(), Request{Passage: "text", Words: []string{"cat"}})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected the backend error to be wrapped, got %v", err)
	}
}

func TestGenerateDefaultsQuestionCount(t *testing.T) {
	canned := &cannedGenerator{reply: "1. q"}
	gen := NewGenerator(canned)

	if _, err := gen.Generate(context.Background(), Request{Passage: "text", Words: []string{"cat"}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := fmt.Sprintf("Generate exactly %d numbered questions.", DefaultQuestionCount)
	if !strings.Contains(canned.prompts[0], want) {
		t.Errorf("Expected default question count in prompt:\n%s", canned.prompts[0])
	}
}

// gateGenerator blocks its first call until released; later calls
// return immediately with a different reply.
type gateGenerator struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (g *gateGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()

	if first {
		close(g.started)
		<-g.release
		return "1. stale question", nil
	}
	return "1. fresh question", nil
}

func TestSessionDiscardsSupersededResult(t *testing.T) {
	gate := &gateGenerator{started: make(chan struct{}), release: make(chan struct{})}
	session := NewSession(NewGenerator(gate))
	req := Request{Passage: "text", Words: []string{"cat"}}

	firstDone := make(chan error, 1)
	go func() {
		_, err := session.Generate(context.Background(), req)
		firstDone <- err
	}()

	// Wait for the first run to reach the backend, then start a newer one.
	<-gate.started
	questions, err := session.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error from the newer run: %v", err)
	}
	if questions[0].Q != "fresh question" {
		t.Errorf("Newer run must win, got %+v", questions)
	}

	close(gate.release)
	if err := <-firstDone; err != ErrSuperseded {
		t.Errorf("Stale run must report ErrSuperseded, got %v", err)
	}
}
