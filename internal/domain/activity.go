package domain

import "time"

// Action is the audited kind of change.
type Action string

const (
	ActionCreate   Action = "CREATE"
	ActionUpdate   Action = "UPDATE"
	ActionDelete   Action = "DELETE"
	ActionComplete Action = "COMPLETE"
)

// Activity is one append-only audit trail entry. It references other
// entities only through free text, never by key.
type Activity struct {
	ID          string    `json:"id"`
	Action      Action    `json:"action"`
	Entity      string    `json:"entity"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClassifyTaskUpdate derives the audit action for a task update from the
// old and new snapshots: moving into Done from any other status counts as
// a completion, everything else is a plain update. Statuses are compared
// in canonical form, so a pre-migration "completed" task relabeled Done
// is not re-audited as a completion. The result is never stored on the
// task itself.
func ClassifyTaskUpdate(old, next Task) Action {
	if CanonicalStatus(next.Status) == StatusDone && CanonicalStatus(old.Status) != StatusDone {
		return ActionComplete
	}
	return ActionUpdate
}
