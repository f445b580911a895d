package exercise

import (
	"context"
	"fmt"

	"github.com/YannErmes/langlearn/internal/storage"
)

// TextGenerator produces free-form text for a prompt. Satisfied by the
// Gemini client; tests substitute a canned implementation.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Request describes one generation run.
type Request struct {
	Passage      string
	Words        []string
	NumQuestions int
}

// Generator turns a Request into parsed questions using a TextGenerator.
type Generator struct {
	gen TextGenerator
}

// NewGenerator creates a question generator backed by gen.
func NewGenerator(gen TextGenerator) *Generator {
	return &Generator{gen: gen}
}

// Generate validates the request, submits the prompt and parses the
// reply. No partial results are returned on failure.
func (g *Generator) Generate(ctx context.Context, req Request) ([]storage.Question, error) {
	if len(req.Words) == 0 {
		return nil, fmt.Errorf("no target words provided")
	}
	words := req.Words
	if len(words) > MaxTargetWords {
		words = words[:MaxTargetWords]
	}
	count := req.NumQuestions
	if count <= 0 {
		count = DefaultQuestionCount
	}

	raw, err := g.gen.GenerateText(ctx, BuildPrompt(req.Passage, words, count))
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}
	return questions, nil
}
