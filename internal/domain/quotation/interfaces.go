package quotation

import (
	"context"

	"github.com/crtic/ptc-manager/internal/domain/activity"
)

// Store provides persistence for quotations.
type Store interface {
	InsertQuotation(ctx context.Context, q *Quotation) error
	ListQuotations(ctx context.Context) ([]Quotation, error)
}

// ActivityStore appends entries to the activity log.
type ActivityStore interface {
	PrependActivity(ctx context.Context, entry *activity.Activity) error
}
