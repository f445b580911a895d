package gemini

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client handles text generation through the Gemini API.
type Client struct {
	model   string
	client  *genai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a Gemini client for the given API key. The model may
// be empty, in which case DefaultModel is used.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not configured")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		model:   model,
		client:  client,
		breaker: newBreaker(),
	}, nil
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// GenerateText sends a prompt to the configured model and returns the
// raw response text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			return nil, fmt.Errorf("Gemini API error: %w", err)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from Gemini")
		}

		var sb strings.Builder
		for _, part := range resp.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			return nil, fmt.Errorf("empty response from Gemini")
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Define asks for a short definition of a single word.
func (c *Client) Define(ctx context.Context, word string) (string, error) {
	return c.GenerateText(ctx, fmt.Sprintf("Define the word %q in a few words", word))
}

// SearchURL returns a web search URL for looking up a word's definition
// by hand. Used as a fallback when no API key is configured or the API
// call fails.
func SearchURL(word string) string {
	return "https://www.google.com/search?q=define+" + url.QueryEscape(word)
}
