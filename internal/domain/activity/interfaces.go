package activity

import "context"

// Store provides persistence for the activity log. New entries go to the
// head: most-recent-first is the log's only ordering guarantee.
type Store interface {
	PrependActivity(ctx context.Context, entry *Activity) error
	ListActivities(ctx context.Context) ([]Activity, error)
}

// ProjectNames resolves a project ID to its display name. Implementations
// return repository.ErrNotFound for IDs that no longer exist.
type ProjectNames interface {
	ProjectName(ctx context.Context, id string) (string, error)
}
