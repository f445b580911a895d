// Package translation provides word translation into English using the
// OpenAI API, used to enrich vocabulary entries. It includes a cache so
// batch operations do not translate the same word twice.
package translation
