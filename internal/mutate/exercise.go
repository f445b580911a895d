package mutate

import (
	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/storage"
)

// AddExerciseRequest carries the caller-supplied fields of a new exercise
// set. Generation itself lives in the exercise package, saving is an
// explicit second step.
type AddExerciseRequest struct {
	TextID    string
	Words     []string
	Questions []storage.Question
}

// AddExercise prepends a new exercise set and returns the new document and
// the generated id.
func AddExercise(doc storage.AppData, req AddExerciseRequest) (storage.AppData, string) {
	words := req.Words
	if words == nil {
		words = []string{}
	}
	questions := req.Questions
	if questions == nil {
		questions = []storage.Question{}
	}
	set := storage.ExerciseSet{
		ID:        internal.GenerateID(req.TextID),
		TextID:    req.TextID,
		Words:     words,
		Questions: questions,
		SavedAt:   timestamp(),
	}
	doc.Exercises = append([]storage.ExerciseSet{set}, doc.Exercises...)
	return doc, set.ID
}

// ExerciseUpdate is a partial update: nil fields are left untouched.
type ExerciseUpdate struct {
	TextID    *string
	Words     []string
	Questions []storage.Question
}

// UpdateExercise shallow-merges the given fields into the exercise set
// with the given id. Unknown ids are a no-op.
func UpdateExercise(doc storage.AppData, id string, patch ExerciseUpdate) storage.AppData {
	exercises := make([]storage.ExerciseSet, len(doc.Exercises))
	copy(exercises, doc.Exercises)
	for i := range exercises {
		if exercises[i].ID != id {
			continue
		}
		if patch.TextID != nil {
			exercises[i].TextID = *patch.TextID
		}
		if patch.Words != nil {
			exercises[i].Words = patch.Words
		}
		if patch.Questions != nil {
			exercises[i].Questions = patch.Questions
		}
	}
	doc.Exercises = exercises
	return doc
}

// DeleteExercise removes the exercise set with the given id.
func DeleteExercise(doc storage.AppData, id string) storage.AppData {
	exercises := make([]storage.ExerciseSet, 0, len(doc.Exercises))
	for _, e := range doc.Exercises {
		if e.ID != id {
			exercises = append(exercises, e)
		}
	}
	doc.Exercises = exercises
	return doc
}
