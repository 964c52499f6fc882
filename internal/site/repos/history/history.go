package history

import (
	"context"
	"time"

	"github.com/haukened/sitewatch/internal/site/domain"
)

// Provider answers "which URLs were visited in this window". Both bounds are inclusive.
type Provider interface {
	Search(ctx context.Context, start, end time.Time) ([]domain.HistoryItem, error)
}

// StoreStats captures high-level counts for the persistent store.
type StoreStats struct {
	Visits     uint64
	OldestUnix int64 // seconds since epoch, 0 when empty
	NewestUnix int64
}

// Store is a persistent visit log.
// - Record: append one visit
// - Search: visits in [start, end], oldest first
// - Prune: drop visits strictly older than before, returning how many were removed
type Store interface {
	Provider
	Record(item domain.HistoryItem) error
	Prune(before time.Time) (int, error)
	Stats() StoreStats
	Close() error
}
