package project

import "time"

// Type classifies a project as an R&D project or an I+D service.
type Type string

const (
	TypeRD      Type = "R&D"
	TypeService Type = "Service"
)

// DisplayLabel returns the label used by the dashboard's type filter.
func (t Type) DisplayLabel() string {
	if t == TypeRD {
		return "R&D Project"
	}
	return "I+D Service"
}

// Status represents the closure state of a project. Closure is an overlay:
// it never alters the stage or progress.
type Status string

const (
	StatusActive     Status = "Active"
	StatusClosedWon  Status = "Closed Won"
	StatusClosedLost Status = "Closed Lost"
)

// Project is a tracked pipeline project. JSON field names follow the
// persisted collection format.
type Project struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Client        string              `json:"client"`
	Sector        string              `json:"sector"`
	Type          Type                `json:"type"`
	Stage         Stage               `json:"stage"`
	Progress      int                 `json:"progress"`
	Status        Status              `json:"status"`
	Description   string              `json:"description,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	StageHistory  map[Stage]time.Time `json:"stageHistory"`
	ClosureReason string              `json:"closureReason,omitempty"`
	ClosedAt      *time.Time          `json:"closedAt,omitempty"`
	Amount        float64             `json:"amount,omitempty"`
	Sr            *float64            `json:"sr,omitempty"`
}

// Closed reports whether the project has a terminal closure overlay.
func (p *Project) Closed() bool {
	return p.Status == StatusClosedWon || p.Status == StatusClosedLost
}

// InFlight reports whether the project counts toward the dashboard's
// "active projects" headline: still Active and not yet in one of the two
// final maturity stages.
func (p *Project) InFlight() bool {
	return p.Status == StatusActive && p.Stage != StageValidate && p.Stage != StageScale
}

// IsOverdue reports whether the project has sat in its current stage for
// more than 15 days.
func (p *Project) IsOverdue(now time.Time) bool {
	entered, ok := p.StageHistory[p.Stage]
	if !ok {
		return false
	}
	return now.Sub(entered) > 15*24*time.Hour
}

// Sectors returns the industry set offered by the dashboard.
func Sectors() []string {
	return []string{
		"Extractiva",
		"Retail",
		"Salud",
		"Logística",
		"Recursos Humanos",
		"Gobierno",
		"Turismo",
		"Construcción",
		"Energía",
		"Deportes",
		"Industrias Creativas",
		"Patrimonio",
		"Automotriz",
	}
}
