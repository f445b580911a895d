package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Fetcher handles fetching IPA transcriptions for studied words
type Fetcher struct {
	apiKey   string
	language string
	client   *openai.Client
}

// NewFetcher creates a new phonetic information fetcher. The language
// names the language being studied and may be empty when unknown.
func NewFetcher(apiKey, language string) *Fetcher {
	return &Fetcher{
		apiKey:   apiKey,
		language: language,
		client:   openai.NewClient(apiKey),
	}
}

// FetchIPA returns the IPA transcription of a word, without brackets or
// commentary.
func (f *Fetcher) FetchIPA(word string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subject := fmt.Sprintf("the word '%s'", word)
	if f.language != "" {
		subject = fmt.Sprintf("the %s word '%s'", f.language, word)
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a pronunciation assistant. Respond with only the IPA transcription of the given word, including stress marks, with no brackets, slashes or explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Provide the IPA transcription for %s.", subject),
			},
		},
		Temperature: 0.3,
		MaxTokens:   50,
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	ipa := strings.TrimSpace(resp.Choices[0].Message.Content)
	ipa = strings.Trim(ipa, "/[]")
	return ipa, nil
}
