// Package alerts composes the per-page alert list from the individual signals.
package alerts

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/common/utils"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/services/signals"
)

// Evaluator is the set of host and redirect heuristics the aggregator runs.
type Evaluator interface {
	IsTopSite(host string) bool
	VisitedBeforeToday(ctx context.Context, host string) bool
	HasManySubdomains(host string) bool
	HasLongSubdomains(host string) bool
	HasReferrers() bool
	FetchRedirectURLs(ctx context.Context, pageURL string, tabID int) domain.URLSet
	RedirectsThroughSuspiciousTLD(urls domain.URLSet) bool
}

var _ Evaluator = (*signals.Evaluator)(nil)

type Aggregator struct {
	evaluator Evaluator
	logger    log.Logger
}

type Options struct {
	Evaluator Evaluator
	Logger    log.Logger
}

func New(opts Options) *Aggregator {
	return &Aggregator{
		evaluator: opts.Evaluator,
		logger:    log.WithFields(opts.Logger, map[string]any{"component": "alerts"}),
	}
}

// Evaluate runs every signal for pageURL. The history and referrer lookups run
// concurrently; the result is only returned once all of them have settled.
// A URL without a usable host yields zero Signals, which raise no alerts.
func (a *Aggregator) Evaluate(ctx context.Context, pageURL string, tabID int) domain.Signals {
	host, err := utils.HostFromURL(pageURL)
	if err != nil {
		a.logger.Debug(map[string]any{"url": pageURL, "error": err.Error()}, "skipping url without host")
		return domain.Signals{}
	}

	s := domain.Signals{Host: host}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.VisitedBefore = a.evaluator.VisitedBeforeToday(gctx, host)
		return nil
	})
	var redirects domain.URLSet
	if a.evaluator.HasReferrers() {
		g.Go(func() error {
			redirects = a.evaluator.FetchRedirectURLs(gctx, pageURL, tabID)
			return nil
		})
	}

	s.TopSite = a.evaluator.IsTopSite(host)
	if !s.TopSite {
		s.IDN = signals.IsIDN(host)
	}
	s.ManySubdomains = a.evaluator.HasManySubdomains(host)
	s.LongSubdomains = a.evaluator.HasLongSubdomains(host)

	_ = g.Wait()

	if redirects.Len() > 0 {
		s.MultipleURLShortener = signals.HasMultipleURLShortenerRedirects(redirects)
		s.SuspiciousTLD = a.evaluator.RedirectsThroughSuspiciousTLD(redirects)
	}

	a.logger.Debug(map[string]any{
		"host":      host,
		"tab_id":    tabID,
		"redirects": redirects.Len(),
	}, "signals evaluated")
	return s
}

// Alerts returns the raised alert kinds for pageURL in display order.
func (a *Aggregator) Alerts(ctx context.Context, pageURL string, tabID int) []domain.AlertKind {
	return a.Evaluate(ctx, pageURL, tabID).Alerts()
}

// ComputeAlerts returns the alert messages for pageURL in display order, without duplicates.
func (a *Aggregator) ComputeAlerts(ctx context.Context, pageURL string, tabID int) []string {
	return domain.Messages(a.Alerts(ctx, pageURL, tabID))
}
