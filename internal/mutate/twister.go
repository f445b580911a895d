package mutate

import "github.com/YannErmes/langlearn/internal/storage"

// ToggleTongueTwisterPracticed flips the practiced flag of the matching
// drill. Unknown ids are a no-op.
func ToggleTongueTwisterPracticed(doc storage.AppData, id string) storage.AppData {
	twisters := make([]storage.TongueTwister, len(doc.TongueTwisters))
	copy(twisters, doc.TongueTwisters)
	for i := range twisters {
		if twisters[i].ID == id {
			twisters[i].Practiced = !twisters[i].Practiced
		}
	}
	doc.TongueTwisters = twisters
	return doc
}
