package repository

import "context"

// Collections is the persistence collaborator boundary: a key-value blob
// store holding one serialized collection per key. Load returns ErrNotFound
// when no blob was ever saved under the key. Save failures are best-effort
// from the caller's perspective; in-memory state stays authoritative.
type Collections interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
