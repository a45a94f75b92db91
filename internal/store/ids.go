package store

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator issues project IDs from a monotonic millisecond clock. Two
// creations in the same instant tie-break by bumping past the last issued
// value, so IDs stay unique and strictly increasing within the store.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates an ID generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NextID returns the next unique project ID.
func (g *IDGenerator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return strconv.FormatInt(now, 10)
}
