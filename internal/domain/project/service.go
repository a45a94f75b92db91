package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

// ImportTypeThreshold splits imported candidates into R&D projects and I+D
// services by estimated amount.
const ImportTypeThreshold = 100000

// Service handles project lifecycle operations. Every mutation appends
// exactly one entry to the activity log.
type Service struct {
	store      Store
	ids        IDSource
	activities ActivityStore
	quotations QuotationStore
	logger     *slog.Logger
}

// NewService creates a new project service.
func NewService(store Store, ids IDSource, activities ActivityStore, quotations QuotationStore, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		ids:        ids,
		activities: activities,
		quotations: quotations,
		logger:     logger,
	}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string
	Client      string
	Sector      string
	Type        Type
	Description string
}

// UpdateRequest defines an edit of a project's descriptive fields. Stage,
// status and tracking fields are not editable here.
type UpdateRequest struct {
	ID          string
	Name        *string
	Client      *string
	Sector      *string
	Type        *Type
	Description *string
	Amount      *float64
}

// ImportRequest carries a candidate record produced by the extraction
// collaborator.
type ImportRequest struct {
	Name        string
	Client      string
	Sector      string
	Amount      float64
	Sr          float64
	Status      string
	Description string
}

// ImportResult reports what an import produced. Quotation is nil unless the
// candidate's status warranted one.
type ImportResult struct {
	Project   *Project             `json:"project"`
	Quotation *quotation.Quotation `json:"quotation,omitempty"`
}

// Create creates a new project at the Opportunity stage.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Project{
		ID:           s.ids.NextID(),
		Name:         req.Name,
		Client:       req.Client,
		Sector:       req.Sector,
		Type:         req.Type,
		Stage:        StageOpportunity,
		Progress:     ProgressFor(StageOpportunity),
		Status:       StatusActive,
		Description:  req.Description,
		CreatedAt:    now,
		StageHistory: map[Stage]time.Time{StageOpportunity: now},
	}

	if err := s.store.InsertProject(ctx, p); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.record(ctx, fmt.Sprintf("New project created: %s", p.Name), now)
	return p, nil
}

// AdvanceStage moves a project to a new stage, recomputing progress and
// stamping the stage history. Transitions are free-form: the lab's process
// allows regression and skips, so no adjacency check is applied.
func (s *Service) AdvanceStage(ctx context.Context, id string, newStage Stage) (*Project, error) {
	if !ValidStage(newStage) {
		return nil, ErrInvalidInput
	}

	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	oldStage := p.Stage
	p.Stage = newStage
	p.Progress = ProgressFor(newStage)
	if p.StageHistory == nil {
		p.StageHistory = map[Stage]time.Time{}
	}
	p.StageHistory[newStage] = now

	if err := s.store.UpdateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("advancing stage: %w", err)
	}

	s.record(ctx, fmt.Sprintf("Project %q moved from %s to %s", p.Name, oldStage, newStage), now)
	return p, nil
}

// Close applies a terminal outcome overlay to an active project. The stage,
// progress and stage history are left untouched. Closing an already-closed
// project is rejected and emits no activity.
func (s *Service) Close(ctx context.Context, id string, outcome Status, reason string) (*Project, error) {
	if outcome != StatusClosedWon && outcome != StatusClosedLost {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}

	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusActive {
		return nil, ErrAlreadyClosed
	}

	now := time.Now()
	p.Status = outcome
	p.ClosureReason = reason
	p.ClosedAt = &now

	if err := s.store.UpdateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("closing project: %w", err)
	}

	verdict := "Won"
	if outcome == StatusClosedLost {
		verdict = "Lost"
	}
	s.record(ctx, fmt.Sprintf("Project %q closed: %s - reason: %s", p.Name, verdict, reason), now)
	return p, nil
}

// UpdateDetails edits a project's descriptive fields.
func (s *Service) UpdateDetails(ctx context.Context, req UpdateRequest) (*Project, error) {
	p, err := s.store.GetProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		p.Name = *req.Name
	}
	if req.Client != nil {
		if strings.TrimSpace(*req.Client) == "" {
			return nil, ErrInvalidInput
		}
		p.Client = *req.Client
	}
	if req.Sector != nil {
		p.Sector = *req.Sector
	}
	if req.Type != nil {
		if *req.Type != TypeRD && *req.Type != TypeService {
			return nil, ErrInvalidInput
		}
		p.Type = *req.Type
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, ErrInvalidInput
		}
		p.Amount = *req.Amount
	}

	if err := s.store.UpdateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.record(ctx, fmt.Sprintf("Project details updated: %s", p.Name), time.Now())
	return p, nil
}

// Delete removes a project. Activity entries referencing it are left in
// place as dangling weak references.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	s.record(ctx, fmt.Sprintf("Project deleted: %s", p.Name), time.Now())
	return nil
}

// ImportCandidate integrates a record from the extraction collaborator: it
// passes through the same validation as a manual creation, and a candidate
// already in a commercial state also synthesizes a quotation.
func (s *Service) ImportCandidate(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	if req.Amount < 0 {
		return nil, ErrInvalidInput
	}

	typ := TypeService
	if req.Amount > ImportTypeThreshold {
		typ = TypeRD
	}

	if err := ValidateCreateInput(CreateRequest{
		Name:   req.Name,
		Client: req.Client,
		Sector: req.Sector,
		Type:   typ,
	}); err != nil {
		return nil, err
	}

	now := time.Now()
	sr := req.Sr
	p := &Project{
		ID:           s.ids.NextID(),
		Name:         req.Name,
		Client:       req.Client,
		Sector:       req.Sector,
		Type:         typ,
		Stage:        StageOpportunity,
		Progress:     ProgressFor(StageOpportunity),
		Status:       StatusActive,
		Description:  req.Description,
		CreatedAt:    now,
		StageHistory: map[Stage]time.Time{StageOpportunity: now},
		Amount:       req.Amount,
		Sr:           &sr,
	}

	if err := s.store.InsertProject(ctx, p); err != nil {
		return nil, fmt.Errorf("importing candidate: %w", err)
	}

	result := &ImportResult{Project: p}

	if req.Status == string(quotation.StatusProspection) || req.Status == string(quotation.StatusSale) {
		q := &quotation.Quotation{
			ID:     uuid.NewString(),
			Client: req.Client,
			Sector: req.Sector,
			Amount: req.Amount,
			Date:   quotation.NewDate(now),
			Status: quotation.Status(req.Status),
		}
		if err := s.quotations.InsertQuotation(ctx, q); err != nil {
			return nil, fmt.Errorf("synthesizing quotation: %w", err)
		}
		result.Quotation = q
	}

	s.record(ctx, fmt.Sprintf("AI autodetect: new project from %s (%s)", p.Client, p.Sector), now)
	return result, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	return s.store.GetProject(ctx, id)
}

// List returns the projects matching the filter, most recent first.
func (s *Service) List(ctx context.Context, f Filter) ([]Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return f.Apply(projects), nil
}

// record appends a system-generated activity entry. Log failures are not
// surfaced: the mutation already happened and in-memory state is the source
// of truth for the session.
func (s *Service) record(ctx context.Context, title string, now time.Time) {
	entry := activity.System(title, now)
	if err := s.activities.PrependActivity(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity", "title", title, "error", err)
	}
}
