// Package gemini wraps the Google Gemini API behind a small client used
// for exercise generation and quick word definitions. Calls go through a
// circuit breaker so a flaky or rate-limited API degrades gracefully
// instead of hammering the endpoint.
package gemini
