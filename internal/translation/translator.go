package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Translator handles translation of studied words into English
type Translator struct {
	apiKey   string
	language string
	client   *openai.Client
}

// NewTranslator creates a new translator instance. The language names
// the language being studied and may be empty when unknown.
func NewTranslator(apiKey, language string) *Translator {
	return &Translator{
		apiKey:   apiKey,
		language: language,
		client:   openai.NewClient(apiKey),
	}
}

// TranslateWord translates a word or expression to English
func (t *Translator) TranslateWord(word string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	ctx := context.Background()

	prompt := fmt.Sprintf("Translate '%s' to English. Respond with only the English translation, nothing else.", word)
	if t.language != "" {
		prompt = fmt.Sprintf("Translate the %s word '%s' to English. Respond with only the English translation, nothing else.", t.language, word)
	}

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	return translation, nil
}

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word, translation string) {
	tc.translations[word] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (string, bool) {
	translation, ok := tc.translations[word]
	return translation, ok
}

// GetAll returns all cached translations
func (tc *TranslationCache) GetAll() map[string]string {
	// Return a copy to prevent external modification
	result := make(map[string]string)
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}
