// Package phonetic fetches IPA transcriptions for studied words using
// OpenAI's GPT models, filling the pronunciation field of vocabulary
// entries.
package phonetic
