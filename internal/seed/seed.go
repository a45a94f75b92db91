// Package seed provides the static fallback dataset used when a collection
// has no previously saved state. The shape is identical to the persisted
// format; projects are still normalized on load like any other data.
package seed

import (
	"time"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/project"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

func ptr(v float64) *float64 { return &v }

// Projects returns the fallback project collection. Dates are anchored to
// now so the dashboard starts with in-flight work.
func Projects(now time.Time) []project.Project {
	older := now.AddDate(0, -2, 0)
	recent := now.AddDate(0, 0, -12)
	return []project.Project{
		{
			ID:          "1700000000001",
			Name:        "Gemelo Digital Planta Norte",
			Client:      "Andina Minerales",
			Sector:      "Extractiva",
			Type:        project.TypeRD,
			Stage:       project.StageDevelop,
			Progress:    project.ProgressFor(project.StageDevelop),
			Status:      project.StatusActive,
			Description: "Gemelo digital de la línea de chancado con visión artificial.",
			CreatedAt:   older,
			StageHistory: map[project.Stage]time.Time{
				project.StageOpportunity: older,
				project.StageExploration: older.AddDate(0, 0, 14),
				project.StageResearch:    older.AddDate(0, 1, 0),
				project.StageDevelop:     recent,
			},
			Amount: 48000000,
			Sr:     ptr(0.7),
		},
		{
			ID:          "1700000000002",
			Name:        "Recorrido Virtual Patrimonio",
			Client:      "Municipalidad de Valparaíso",
			Sector:      "Patrimonio",
			Type:        project.TypeService,
			Stage:       project.StageExploration,
			Progress:    project.ProgressFor(project.StageExploration),
			Status:      project.StatusActive,
			Description: "Captura 360 y gaussian splats de edificios patrimoniales.",
			CreatedAt:   recent,
			StageHistory: map[project.Stage]time.Time{
				project.StageOpportunity: recent,
				project.StageExploration: recent.AddDate(0, 0, 5),
			},
			Amount: 9500000,
			Sr:     ptr(0.8),
		},
		{
			ID:          "1700000000003",
			Name:        "Asistente IA Mesa de Ayuda",
			Client:      "Clínica del Valle",
			Sector:      "Salud",
			Type:        project.TypeRD,
			Stage:       project.StageOpportunity,
			Progress:    project.ProgressFor(project.StageOpportunity),
			Status:      project.StatusActive,
			Description: "Piloto de asistente conversacional para agendamiento.",
			CreatedAt:   now.AddDate(0, 0, -3),
			StageHistory: map[project.Stage]time.Time{
				project.StageOpportunity: now.AddDate(0, 0, -3),
			},
		},
	}
}

// Activities returns the fallback activity log, most recent first.
func Activities(now time.Time) []activity.Activity {
	return []activity.Activity{
		{
			ID:                "seed-act-1",
			Type:              activity.TypeManual,
			Tag:               "Reunión",
			Title:             "Reunión de seguimiento con Andina Minerales",
			Date:              now.AddDate(0, 0, -1).Format(time.DateOnly),
			Time:              "10:30",
			Status:            activity.StatusPending,
			AssociatedClient:  "Andina Minerales",
			AssociatedProject: "1700000000001",
		},
		{
			ID:     "seed-act-2",
			Type:   activity.TypeSystem,
			Title:  "New project created: Asistente IA Mesa de Ayuda",
			Date:   now.AddDate(0, 0, -3).Format(time.DateOnly),
			Time:   "09:12",
			Status: activity.StatusCompleted,
		},
	}
}

// Quotations returns the fallback quotation collection.
func Quotations(now time.Time) []quotation.Quotation {
	return []quotation.Quotation{
		{
			ID:     "seed-quo-1",
			Client: "Andina Minerales",
			Sector: "Extractiva",
			Amount: 48000000,
			Date:   quotation.NewDate(now.AddDate(0, 0, -20)),
			Status: quotation.StatusSale,
		},
		{
			ID:     "seed-quo-2",
			Client: "Municipalidad de Valparaíso",
			Sector: "Patrimonio",
			Amount: 9500000,
			Date:   quotation.NewDate(now.AddDate(0, 0, -8)),
			Status: quotation.StatusProspection,
		},
	}
}
