package phonetic

import (
	"os"
	"testing"
)

func TestNewFetcher(t *testing.T) {
	fetcher := NewFetcher("test-api-key", "French")

	if fetcher == nil {
		t.Fatal("NewFetcher returned nil")
	}

	if fetcher.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", fetcher.apiKey)
	}

	if fetcher.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestFetchIPA_NoAPIKey(t *testing.T) {
	fetcher := NewFetcher("", "")

	_, err := fetcher.FetchIPA("chat")
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	if err.Error() != "OpenAI API key not configured" {
		t.Errorf("Expected 'OpenAI API key not configured' error, got: %v", err)
	}
}

func TestFetchIPA_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	fetcher := NewFetcher(apiKey, "French")

	ipa, err := fetcher.FetchIPA("chat")
	if err != nil {
		t.Errorf("FetchIPA failed: %v", err)
	}

	if ipa == "" {
		t.Error("Got empty transcription")
	}

	t.Logf("IPA for 'chat': %s", ipa)
}
