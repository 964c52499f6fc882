// Package referrers keeps the most recent referrer chain per browser tab.
package referrers

import (
	"context"
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/sitewatch/internal/site/domain"
)

// DefaultCapacity bounds the number of tabs tracked when none is configured.
const DefaultCapacity = 512

// ErrInvalidTab is returned for negative tab ids.
var ErrInvalidTab = errors.New("tab id must not be negative")

// Store is a bounded per-tab LRU of referrer chains. Least recently touched tabs are
// evicted first. Safe for concurrent use.
type Store struct {
	chains *lru.Cache[int, []domain.ReferrerEntry]
}

// New returns a Store tracking at most capacity tabs. capacity <= 0 selects DefaultCapacity.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c, err := lru.New[int, []domain.ReferrerEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &Store{chains: c}, nil
}

// Put replaces the chain recorded for tabID. Entries are most recent first.
func (s *Store) Put(tabID int, chain []domain.ReferrerEntry) error {
	if tabID < 0 {
		return ErrInvalidTab
	}
	for i, e := range chain {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("referrer entry %d: %w", i, err)
		}
	}
	s.chains.Add(tabID, slices.Clone(chain))
	return nil
}

// ReferrerChain returns the chain recorded for tabID. An unknown tab yields an
// empty chain, not an error.
func (s *Store) ReferrerChain(ctx context.Context, tabID int) ([]domain.ReferrerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tabID < 0 {
		return nil, ErrInvalidTab
	}
	chain, ok := s.chains.Get(tabID)
	if !ok {
		return nil, nil
	}
	return slices.Clone(chain), nil
}

// Forget drops the chain for tabID.
func (s *Store) Forget(tabID int) {
	s.chains.Remove(tabID)
}

// Len returns the number of tracked tabs.
func (s *Store) Len() int {
	return s.chains.Len()
}
