// Package mutate implements the notebook's record mutators. Every mutator
// is a pure function from a document plus a request to a new document: the
// touched collection is copied, everything else is shared structurally.
// Callers persist the result through storage.Store. Updates and deletes of
// unknown ids are no-ops.
package mutate

import "time"

// now is the mutator clock. Tests swap it to simulate specific days.
var now = time.Now

// timestamp returns the creation stamp used for new records.
func timestamp() string {
	return now().UTC().Format(time.RFC3339)
}

// dayKey returns today's usage-history key in the local timezone.
func dayKey() string {
	return now().Format("2006-01-02")
}
