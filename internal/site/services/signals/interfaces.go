package signals

import (
	"context"
	"time"

	"github.com/haukened/sitewatch/internal/site/domain"
)

// SuffixResolver returns the public suffix of an ASCII, lowercase host.
type SuffixResolver interface {
	GetTld(host string, icannOnly bool) string
}

// TopSites answers membership for registrable domains.
type TopSites interface {
	Contains(domain string) bool
}

// HistoryProvider lists visits in an inclusive time window.
type HistoryProvider interface {
	Search(ctx context.Context, start, end time.Time) ([]domain.HistoryItem, error)
}

// ReferrerProvider returns the referrer chain of a tab, most recent entry first.
type ReferrerProvider interface {
	ReferrerChain(ctx context.Context, tabID int) ([]domain.ReferrerEntry, error)
}
