package project

import "time"

// Normalize backfills tracking fields on a project loaded from storage.
// Collections written by earlier schema versions may lack createdAt,
// stageHistory or status; after Normalize the model invariants hold:
// progress is derived from stage and the history covers the current stage.
func Normalize(p *Project, now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if len(p.StageHistory) == 0 {
		p.StageHistory = map[Stage]time.Time{p.Stage: now}
	}
	if _, ok := p.StageHistory[p.Stage]; !ok {
		p.StageHistory[p.Stage] = now
	}
	p.Progress = ProgressFor(p.Stage)
}
