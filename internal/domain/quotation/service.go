package quotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/money"
)

// Service handles quotation operations.
type Service struct {
	store      Store
	activities ActivityStore
	logger     *slog.Logger
}

// NewService creates a new quotation service.
func NewService(store Store, activities ActivityStore, logger *slog.Logger) *Service {
	return &Service{store: store, activities: activities, logger: logger}
}

// CreateRequest defines quotation creation inputs.
type CreateRequest struct {
	Client string
	Sector string
	Amount float64
	Date   Date
	Status Status
}

// SummaryOptions selects which quotations a summary covers. Sector and
// Client accept "All" or empty as wildcards.
type SummaryOptions struct {
	Period Period
	Sector string
	Client string
}

// Summary aggregates the selected quotations.
type Summary struct {
	Period Period  `json:"period"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// Create records a new quotation and logs the activity.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Quotation, error) {
	if strings.TrimSpace(req.Client) == "" {
		return nil, ErrInvalidInput
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidInput
	}
	if req.Date.IsZero() {
		return nil, ErrInvalidInput
	}
	if req.Status != "" && req.Status != StatusProspection && req.Status != StatusSale {
		return nil, ErrInvalidInput
	}

	q := &Quotation{
		ID:     uuid.NewString(),
		Client: req.Client,
		Sector: req.Sector,
		Amount: req.Amount,
		Date:   req.Date,
		Status: req.Status,
	}

	if err := s.store.InsertQuotation(ctx, q); err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	entry := activity.System(fmt.Sprintf("New quotation: %s for %s", q.Client, money.FormatCLP(q.Amount)), time.Now())
	if err := s.activities.PrependActivity(ctx, entry); err != nil && s.logger != nil {
		s.logger.Warn("failed to record activity", "quotation", q.ID, "error", err)
	}

	return q, nil
}

// List returns all quotations, most recent first.
func (s *Service) List(ctx context.Context) ([]Quotation, error) {
	return s.store.ListQuotations(ctx)
}

// Summarize aggregates quotations inside the period containing now, after
// applying the sector and client filters.
func (s *Service) Summarize(ctx context.Context, opts SummaryOptions, now time.Time) (*Summary, error) {
	if !ValidPeriod(opts.Period) {
		return nil, ErrInvalidInput
	}

	quotations, err := s.store.ListQuotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	summary := &Summary{Period: opts.Period}
	for _, q := range FilterByPeriod(quotations, opts.Period, now) {
		if opts.Sector != "" && opts.Sector != "All" && q.Sector != opts.Sector {
			continue
		}
		if opts.Client != "" && opts.Client != "All" && q.Client != opts.Client {
			continue
		}
		summary.Count++
		summary.Total += q.Amount
	}
	return summary, nil
}
