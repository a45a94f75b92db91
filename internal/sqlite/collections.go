package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crtic/ptc-manager/internal/repository"
)

// CollectionRepository implements repository.Collections for SQLite
type CollectionRepository struct {
	db *DB
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// Load returns the blob saved under key, or repository.ErrNotFound
func (r *CollectionRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return data, nil
}

// Save writes the blob under key, replacing any previous value
func (r *CollectionRepository) Save(ctx context.Context, key string, blob []byte) error {
	query := `
		INSERT INTO collections (key, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, key, blob); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}
