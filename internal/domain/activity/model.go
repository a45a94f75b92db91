package activity

import (
	"time"

	"github.com/google/uuid"
)

// Classification of activity entries. System entries are generated as a
// side effect of mutations; manual entries are logged by the user.
const (
	TypeSystem = "review"
	TypeManual = "manual"
)

// Status marks whether an activity already happened.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

// Activity is one entry in the append-only activity log. Entries are never
// edited or removed. The associated client and project are weak references:
// they may dangle after a project is deleted, which is accepted behavior.
type Activity struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Tag               string `json:"tag,omitempty"`
	Title             string `json:"title"`
	Date              string `json:"date"`
	Time              string `json:"time,omitempty"`
	Status            Status `json:"status"`
	AssociatedClient  string `json:"associatedClient,omitempty"`
	AssociatedProject string `json:"associatedProject,omitempty"`
}

// System builds a completed, system-generated entry stamped with now.
func System(title string, now time.Time) *Activity {
	return &Activity{
		ID:     uuid.NewString(),
		Type:   TypeSystem,
		Title:  title,
		Date:   now.Format(time.DateOnly),
		Time:   now.Format("15:04"),
		Status: StatusCompleted,
	}
}
