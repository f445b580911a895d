package mutate

import (
	"github.com/YannErmes/langlearn/internal"
	"github.com/YannErmes/langlearn/internal/storage"
)

// AddGoal prepends a new weekly goal and returns the new document and the
// generated id.
func AddGoal(doc storage.AppData, text string) (storage.AppData, string) {
	goal := storage.WeeklyGoal{
		ID:        internal.GenerateID(text),
		Text:      text,
		CreatedAt: timestamp(),
	}
	doc.Goals = append([]storage.WeeklyGoal{goal}, doc.Goals...)
	return doc, goal.ID
}

// GoalUpdate is a partial update: nil fields are left untouched.
type GoalUpdate struct {
	Text      *string
	Completed *bool
}

// UpdateGoal shallow-merges the given fields into the goal with the given
// id. Unknown ids are a no-op.
func UpdateGoal(doc storage.AppData, id string, patch GoalUpdate) storage.AppData {
	goals := make([]storage.WeeklyGoal, len(doc.Goals))
	copy(goals, doc.Goals)
	for i := range goals {
		if goals[i].ID != id {
			continue
		}
		if patch.Text != nil {
			goals[i].Text = *patch.Text
		}
		if patch.Completed != nil {
			goals[i].Completed = *patch.Completed
		}
	}
	doc.Goals = goals
	return doc
}

// DeleteGoal removes the goal with the given id.
func DeleteGoal(doc storage.AppData, id string) storage.AppData {
	goals := make([]storage.WeeklyGoal, 0, len(doc.Goals))
	for _, g := range doc.Goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	doc.Goals = goals
	return doc
}
