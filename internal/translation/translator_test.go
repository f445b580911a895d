package translation

import (
	"os"
	"reflect"
	"testing"
)

func TestNewTranslator(t *testing.T) {
	translator := NewTranslator("test-api-key", "French")

	if translator == nil {
		t.Fatal("NewTranslator returned nil")
	}

	if translator.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", translator.apiKey)
	}

	if translator.language != "French" {
		t.Errorf("Expected language 'French', got '%s'", translator.language)
	}

	if translator.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestTranslateWord_NoAPIKey(t *testing.T) {
	translator := NewTranslator("", "")

	_, err := translator.TranslateWord("chat")
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	if err.Error() != "OpenAI API key not found" {
		t.Errorf("Expected 'OpenAI API key not found' error, got: %v", err)
	}
}

func TestTranslateWord_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	translator := NewTranslator(apiKey, "French")

	translation, err := translator.TranslateWord("chat")
	if err != nil {
		t.Errorf("TranslateWord failed: %v", err)
	}

	// The exact translation might vary, but it should not be empty
	if translation == "" {
		t.Error("Got empty translation")
	}

	t.Logf("Translation of 'chat': %s", translation)
}

func TestTranslationCache(t *testing.T) {
	cache := NewTranslationCache()

	// Test empty cache
	_, found := cache.Get("chat")
	if found {
		t.Error("Expected not found in empty cache")
	}

	// Test adding and retrieving
	cache.Add("chat", "cat")
	cache.Add("chien", "dog")

	translation, found := cache.Get("chat")
	if !found {
		t.Error("Expected to find 'chat' in cache")
	}
	if translation != "cat" {
		t.Errorf("Expected 'cat', got '%s'", translation)
	}

	// Test overwriting
	cache.Add("chat", "cat (animal)")
	translation, found = cache.Get("chat")
	if !found || translation != "cat (animal)" {
		t.Errorf("Expected 'cat (animal)', got '%s'", translation)
	}
}

func TestTranslationCache_GetAll(t *testing.T) {
	cache := NewTranslationCache()

	cache.Add("chat", "cat")
	cache.Add("chien", "dog")
	cache.Add("pomme", "apple")

	all := cache.GetAll()

	expected := map[string]string{
		"chat":  "cat",
		"chien": "dog",
		"pomme": "apple",
	}

	if !reflect.DeepEqual(all, expected) {
		t.Errorf("GetAll() = %v, want %v", all, expected)
	}

	// Test that modifying returned map doesn't affect cache
	all["chat"] = "modified"

	translation, _ := cache.Get("chat")
	if translation != "cat" {
		t.Error("Cache was modified through returned map")
	}
}

func TestTranslationCache_EmptyCache(t *testing.T) {
	cache := NewTranslationCache()

	all := cache.GetAll()
	if len(all) != 0 {
		t.Errorf("Expected empty map, got %v", all)
	}
}
