// Package storage owns the langlearn notebook document. It defines the
// AppData schema, the default (first-run) document, and a Store that reads
// and writes the whole document as a single JSON blob through a pluggable
// Backend. Derived exports (pretty JSON, vocabulary CSV and HTML) live here
// as pure functions of a document.
package storage
