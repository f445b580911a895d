// Package exercise builds comprehension-question prompts for a saved
// text and parses the model's free-text reply back into question
// records. The model is asked for a plain numbered list but replies are
// not strictly reliable, so the parser also accepts a JSON array and
// falls back to plain line splitting.
package exercise
