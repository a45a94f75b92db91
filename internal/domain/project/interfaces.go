package project

import (
	"context"

	"github.com/crtic/ptc-manager/internal/domain/activity"
	"github.com/crtic/ptc-manager/internal/domain/quotation"
)

// Store provides persistence for projects.
type Store interface {
	InsertProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]Project, error)
}

// IDSource issues unique, monotonically increasing project IDs.
type IDSource interface {
	NextID() string
}

// ActivityStore appends entries to the activity log.
type ActivityStore interface {
	PrependActivity(ctx context.Context, entry *activity.Activity) error
}

// QuotationStore inserts quotations synthesized during candidate import.
type QuotationStore interface {
	InsertQuotation(ctx context.Context, q *quotation.Quotation) error
}
