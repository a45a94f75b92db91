// Package metrics derives aggregate pipeline statistics from current store
// contents. Everything here is a pure function recomputed on demand; the
// engine keeps no state of its own.
package metrics

import (
	"math"
	"time"

	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

// Synthetic per-bucket valuations for the pipeline indicator. These are
// fixed business constants, not derived from actual quoted amounts.
const (
	ProspectionValue = 150000
	SalesValue       = 350000
	GrowthValue      = 800000
)

// Breakdown is the pipeline valuation split by bucket.
type Breakdown struct {
	Prospection float64 `json:"prospection"`
	Sales       float64 `json:"sales"`
	Growth      float64 `json:"growth"`
	Total       float64 `json:"total"`
}

// ScopeGuard flags projects at risk of stalling.
type ScopeGuard struct {
	AtRisk    int `json:"atRisk"`
	Monitored int `json:"monitored"`
}

// StageCount pairs a lifecycle stage with its project count.
type StageCount struct {
	Stage project.Stage `json:"stage"`
	Count int           `json:"count"`
}

// Summary is the full dashboard snapshot.
type Summary struct {
	ActiveProjects    int          `json:"activeProjects"`
	Services          int          `json:"services"`
	TotalQuoted       float64      `json:"totalQuoted"`
	ClosingRate       int          `json:"closingRate"`
	LeadSector        string       `json:"leadSector"`
	Pipeline          Breakdown    `json:"pipeline"`
	AvgReplicability  float64      `json:"avgReplicability"`
	UniqueClients     []string     `json:"uniqueClients"`
	ScopeGuard        ScopeGuard   `json:"scopeGuard"`
	StageDistribution []StageCount `json:"stageDistribution"`
}

// Snapshot computes the full dashboard summary.
func Snapshot(projects []project.Project, quotations []quotation.Quotation, now time.Time) Summary {
	return Summary{
		ActiveProjects:    ActiveProjects(projects),
		Services:          ServiceCount(projects),
		TotalQuoted:       TotalQuoted(quotations),
		ClosingRate:       ClosingRate(projects, quotations),
		LeadSector:        LeadSector(projects),
		Pipeline:          PipelineBreakdown(projects, quotations),
		AvgReplicability:  AvgReplicability(projects),
		UniqueClients:     UniqueClients(projects),
		ScopeGuard:        Risk(projects, now),
		StageDistribution: StageDistribution(projects),
	}
}

// TotalQuoted sums all quotation amounts.
func TotalQuoted(quotations []quotation.Quotation) float64 {
	var total float64
	for _, q := range quotations {
		total += q.Amount
	}
	return total
}

// ClosingRate is the won percentage among closed projects. When nothing has
// been closed yet it falls back to the share of projects among all
// opportunities (projects plus quotations) as a proxy, so the displayed
// number changes meaning between branches.
func ClosingRate(projects []project.Project, quotations []quotation.Quotation) int {
	won, lost := 0, 0
	for _, p := range projects {
		switch p.Status {
		case project.StatusClosedWon:
			won++
		case project.StatusClosedLost:
			lost++
		}
	}

	if won+lost > 0 {
		return int(math.Round(float64(won) / float64(won+lost) * 100))
	}

	opportunities := len(projects) + len(quotations)
	if opportunities == 0 {
		return 0
	}
	return int(math.Round(float64(len(projects)) / float64(opportunities) * 100))
}

// LeadSector returns the sector with the most projects. Ties break toward
// the sector first seen in insertion order. Returns "N/A" with no projects.
func LeadSector(projects []project.Project) string {
	counts := map[string]int{}
	var order []string
	for _, p := range projects {
		if _, seen := counts[p.Sector]; !seen {
			order = append(order, p.Sector)
		}
		counts[p.Sector]++
	}

	lead := "N/A"
	best := 0
	for _, sector := range order {
		if counts[sector] > best {
			lead = sector
			best = counts[sector]
		}
	}
	return lead
}

// PipelineBreakdown computes the synthetic pipeline valuation: quotations
// still in prospection (including those with no recorded status), projects
// in the three early stages, and projects in the four later stages, each
// bucket priced at its fixed multiplier.
func PipelineBreakdown(projects []project.Project, quotations []quotation.Quotation) Breakdown {
	var b Breakdown

	for _, q := range quotations {
		if q.Status == quotation.StatusProspection || q.Status == "" {
			b.Prospection += ProspectionValue
		}
	}
	for _, p := range projects {
		switch p.Stage {
		case project.StageOpportunity, project.StageExploration, project.StageResearch:
			b.Sales += SalesValue
		case project.StageDevelop, project.StageTest, project.StageValidate, project.StageScale:
			b.Growth += GrowthValue
		}
	}
	b.Total = b.Prospection + b.Sales + b.Growth
	return b
}

// AvgReplicability averages the replicability score across all projects,
// treating a missing score as 0.5. With no projects it returns 0.5.
func AvgReplicability(projects []project.Project) float64 {
	if len(projects) == 0 {
		return 0.5
	}
	var sum float64
	for _, p := range projects {
		if p.Sr != nil {
			sum += *p.Sr
		} else {
			sum += 0.5
		}
	}
	return sum / float64(len(projects))
}

// UniqueClients returns the distinct non-empty client names across
// projects, in first-seen order.
func UniqueClients(projects []project.Project) []string {
	seen := map[string]bool{}
	var clients []string
	for _, p := range projects {
		if p.Client == "" || seen[p.Client] {
			continue
		}
		seen[p.Client] = true
		clients = append(clients, p.Client)
	}
	return clients
}

// ActiveProjects counts projects that are still in flight: Active status
// and not yet in the Validate or Scale maturity stages.
func ActiveProjects(projects []project.Project) int {
	count := 0
	for _, p := range projects {
		if p.InFlight() {
			count++
		}
	}
	return count
}

// ServiceCount counts I+D service projects.
func ServiceCount(projects []project.Project) int {
	count := 0
	for _, p := range projects {
		if p.Type == project.TypeService {
			count++
		}
	}
	return count
}

// Risk counts active projects overdue in their current stage. Monitored is
// the number of active projects under watch.
func Risk(projects []project.Project, now time.Time) ScopeGuard {
	var guard ScopeGuard
	for _, p := range projects {
		if p.Status != project.StatusActive {
			continue
		}
		guard.Monitored++
		if p.IsOverdue(now) {
			guard.AtRisk++
		}
	}
	return guard
}

// StageDistribution counts projects per lifecycle stage, in stage order.
func StageDistribution(projects []project.Project) []StageCount {
	counts := make([]StageCount, 0, len(project.Stages()))
	for _, stage := range project.Stages() {
		sc := StageCount{Stage: stage}
		for _, p := range projects {
			if p.Stage == stage {
				sc.Count++
			}
		}
		counts = append(counts, sc)
	}
	return counts
}
