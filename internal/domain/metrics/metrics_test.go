package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/domain/metrics"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

func TestTotalQuoted(t *testing.T) {
	quotations := []quotation.Quotation{
		{Amount: 100000},
		{Amount: 250000},
	}
	require.Equal(t, 350000.0, metrics.TotalQuoted(quotations))
	require.Equal(t, 0.0, metrics.TotalQuoted(nil))
}

func TestClosingRate_ClosedProjects(t *testing.T) {
	projects := []project.Project{
		{Status: project.StatusClosedWon},
		{Status: project.StatusClosedWon},
		{Status: project.StatusClosedLost},
		{Status: project.StatusActive},
	}
	// 2 of 3 closed projects were won: 67 after rounding.
	require.Equal(t, 67, metrics.ClosingRate(projects, nil))
}

func TestClosingRate_ProxyBranch(t *testing.T) {
	// With nothing closed, the rate falls back to projects over all
	// opportunities.
	projects := []project.Project{
		{Status: project.StatusActive},
	}
	quotations := []quotation.Quotation{{}, {}, {}}
	require.Equal(t, 25, metrics.ClosingRate(projects, quotations))

	require.Equal(t, 0, metrics.ClosingRate(nil, nil))
}

func TestLeadSector(t *testing.T) {
	require.Equal(t, "N/A", metrics.LeadSector(nil))

	projects := []project.Project{
		{Sector: "Extractiva"},
		{Sector: "Salud"},
		{Sector: "Salud"},
	}
	require.Equal(t, "Salud", metrics.LeadSector(projects))

	// Ties break toward the sector seen first.
	tied := []project.Project{
		{Sector: "Logística"},
		{Sector: "Retail"},
		{Sector: "Retail"},
		{Sector: "Logística"},
	}
	require.Equal(t, "Logística", metrics.LeadSector(tied))
}

func TestPipelineBreakdown(t *testing.T) {
	projects := []project.Project{
		{Stage: project.StageOpportunity},
		{Stage: project.StageDevelop},
	}
	quotations := []quotation.Quotation{
		{Status: quotation.StatusProspection},
		{Status: ""},
		{Status: quotation.StatusSale},
	}

	b := metrics.PipelineBreakdown(projects, quotations)
	// An unset status counts toward prospection; a sale does not.
	require.Equal(t, 2*float64(metrics.ProspectionValue), b.Prospection)
	require.Equal(t, float64(metrics.SalesValue), b.Sales)
	require.Equal(t, float64(metrics.GrowthValue), b.Growth)
	require.Equal(t, 1450000.0, b.Total)
}

func TestAvgReplicability(t *testing.T) {
	require.Equal(t, 0.5, metrics.AvgReplicability(nil))

	sr := 0.9
	projects := []project.Project{
		{Sr: &sr},
		{}, // missing score counts as 0.5
	}
	require.InDelta(t, 0.7, metrics.AvgReplicability(projects), 1e-9)
}

func TestUniqueClients(t *testing.T) {
	projects := []project.Project{
		{Client: "Minera Andina"},
		{Client: "AgroSur"},
		{Client: "Minera Andina"},
		{Client: ""},
	}
	require.Equal(t, []string{"Minera Andina", "AgroSur"}, metrics.UniqueClients(projects))
}

func TestActiveProjects(t *testing.T) {
	projects := []project.Project{
		{Status: project.StatusActive, Stage: project.StageResearch},
		{Status: project.StatusActive, Stage: project.StageValidate},
		{Status: project.StatusActive, Stage: project.StageScale},
		{Status: project.StatusClosedWon, Stage: project.StageResearch},
	}
	require.Equal(t, 1, metrics.ActiveProjects(projects))
}

func TestRisk(t *testing.T) {
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	fresh := now.Add(-2 * 24 * time.Hour)
	stale := now.Add(-20 * 24 * time.Hour)

	projects := []project.Project{
		{
			Status:       project.StatusActive,
			Stage:        project.StageResearch,
			StageHistory: map[project.Stage]time.Time{project.StageResearch: stale},
		},
		{
			Status:       project.StatusActive,
			Stage:        project.StageDevelop,
			StageHistory: map[project.Stage]time.Time{project.StageDevelop: fresh},
		},
		{
			// Closed projects are not monitored even when stale.
			Status:       project.StatusClosedLost,
			Stage:        project.StageTest,
			StageHistory: map[project.Stage]time.Time{project.StageTest: stale},
		},
	}

	guard := metrics.Risk(projects, now)
	require.Equal(t, 2, guard.Monitored)
	require.Equal(t, 1, guard.AtRisk)
}

func TestStageDistribution(t *testing.T) {
	projects := []project.Project{
		{Stage: project.StageOpportunity},
		{Stage: project.StageOpportunity},
		{Stage: project.StageScale},
	}
	dist := metrics.StageDistribution(projects)
	require.Len(t, dist, 7)
	require.Equal(t, project.StageOpportunity, dist[0].Stage)
	require.Equal(t, 2, dist[0].Count)
	require.Equal(t, project.StageScale, dist[6].Stage)
	require.Equal(t, 1, dist[6].Count)
	require.Equal(t, 0, dist[1].Count)
}

func TestSnapshot(t *testing.T) {
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	sr := 0.8
	projects := []project.Project{
		{
			Status:       project.StatusActive,
			Stage:        project.StageResearch,
			Type:         project.TypeRD,
			Client:       "Minera Andina",
			Sector:       "Extractiva",
			Sr:           &sr,
			StageHistory: map[project.Stage]time.Time{project.StageResearch: now.Add(-24 * time.Hour)},
		},
		{
			Status:       project.StatusActive,
			Stage:        project.StageDevelop,
			Type:         project.TypeService,
			Client:       "TransSur",
			Sector:       "Logística",
			StageHistory: map[project.Stage]time.Time{project.StageDevelop: now.Add(-24 * time.Hour)},
		},
	}
	quotations := []quotation.Quotation{
		{Amount: 500000, Status: quotation.StatusProspection},
	}

	s := metrics.Snapshot(projects, quotations, now)
	require.Equal(t, 2, s.ActiveProjects)
	require.Equal(t, 1, s.Services)
	require.Equal(t, 500000.0, s.TotalQuoted)
	require.Equal(t, 67, s.ClosingRate)
	require.Equal(t, []string{"Minera Andina", "TransSur"}, s.UniqueClients)
	require.InDelta(t, 0.65, s.AvgReplicability, 1e-9)
	require.Equal(t, float64(metrics.ProspectionValue+metrics.SalesValue+metrics.GrowthValue), s.Pipeline.Total)
	require.Equal(t, 2, s.ScopeGuard.Monitored)
	require.Equal(t, 0, s.ScopeGuard.AtRisk)
}
