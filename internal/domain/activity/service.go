package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crtic/ptc-manager/internal/repository"
)

// Service handles activity log operations.
type Service struct {
	store    Store
	projects ProjectNames
	logger   *slog.Logger
}

// NewService creates a new activity service.
func NewService(store Store, projects ProjectNames, logger *slog.Logger) *Service {
	return &Service{store: store, projects: projects, logger: logger}
}

// LogRequest defines a manually logged activity.
type LogRequest struct {
	Tag               string
	Title             string
	When              time.Time
	AssociatedClient  string
	AssociatedProject string
}

// Resolution is the lazy lookup result for an activity's associated
// project. Dangling references resolve to Found=false, never an error.
type Resolution struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Found bool   `json:"found"`
}

// Log records a manual activity entry. Manual entries start out Pending.
func (s *Service) Log(ctx context.Context, req LogRequest) (*Activity, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	when := req.When
	if when.IsZero() {
		when = time.Now()
	}

	entry := &Activity{
		ID:                uuid.NewString(),
		Type:              TypeManual,
		Tag:               req.Tag,
		Title:             req.Title,
		Date:              when.Format(time.DateOnly),
		Time:              when.Format("15:04"),
		Status:            StatusPending,
		AssociatedClient:  req.AssociatedClient,
		AssociatedProject: req.AssociatedProject,
	}

	if err := s.store.PrependActivity(ctx, entry); err != nil {
		return nil, fmt.Errorf("logging activity: %w", err)
	}
	return entry, nil
}

// List returns activity entries, most recent first. A limit of 0 returns
// the full log.
func (s *Service) List(ctx context.Context, limit int) ([]Activity, error) {
	entries, err := s.store.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// ResolveProject resolves an activity's associated project reference.
func (s *Service) ResolveProject(ctx context.Context, entry Activity) Resolution {
	if entry.AssociatedProject == "" {
		return Resolution{}
	}
	name, err := s.projects.ProjectName(ctx, entry.AssociatedProject)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.logger != nil {
			s.logger.Warn("project lookup failed", "id", entry.AssociatedProject, "error", err)
		}
		return Resolution{ID: entry.AssociatedProject}
	}
	return Resolution{ID: entry.AssociatedProject, Name: name, Found: true}
}
