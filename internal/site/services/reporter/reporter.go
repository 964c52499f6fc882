// Package reporter assembles and submits user reports of suspicious pages.
package reporter

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/domain"
)

// Submitter delivers a finished report.
type Submitter interface {
	Submit(ctx context.Context, r domain.Report) error
}

// AlertSource computes the alert messages for a page.
type AlertSource interface {
	ComputeAlerts(ctx context.Context, pageURL string, tabID int) []string
}

// RedirectSource collects the redirect URLs that led to a page.
type RedirectSource interface {
	FetchRedirectURLs(ctx context.Context, pageURL string, tabID int) domain.URLSet
}

type Service struct {
	alerts    AlertSource
	clock     clock.Clock
	logger    log.Logger
	newID     func() string
	redirects RedirectSource
	submitter Submitter
}

// Options wires the service. Redirects may be nil, in which case reports never
// carry redirect URLs. NewID defaults to random UUIDs.
type Options struct {
	Alerts    AlertSource
	Clock     clock.Clock
	Logger    log.Logger
	NewID     func() string
	Redirects RedirectSource
	Submitter Submitter
}

func New(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Service{
		alerts:    opts.Alerts,
		clock:     opts.Clock,
		logger:    log.WithFields(opts.Logger, map[string]any{"component": "reporter"}),
		newID:     opts.NewID,
		redirects: opts.Redirects,
		submitter: opts.Submitter,
	}
}

// Submit builds a report for req, attaches the current alerts and, when
// requested, the sorted redirect URLs, then hands it to the submitter.
// The assembled report is returned even when delivery fails.
func (s *Service) Submit(ctx context.Context, req domain.ReportRequest) (domain.Report, error) {
	if err := req.Validate(); err != nil {
		return domain.Report{}, err
	}

	r := domain.Report{
		ID:         s.newID(),
		URL:        req.URL,
		Screenshot: req.Screenshot,
		DOM:        req.DOM,
		Alerts:     s.alerts.ComputeAlerts(ctx, req.URL, req.TabID),
		CreatedAt:  s.clock.Now().UTC(),
	}
	if req.IncludeRedirects && s.redirects != nil {
		r.Referrers = s.redirects.FetchRedirectURLs(ctx, req.URL, req.TabID).Sorted()
	}
	if err := r.Validate(); err != nil {
		return r, fmt.Errorf("invalid report: %w", err)
	}

	if err := s.submitter.Submit(ctx, r); err != nil {
		s.logger.Warn(map[string]any{
			"report_id": r.ID,
			"url":       r.URL,
			"error":     err.Error(),
		}, "report submission failed")
		return r, fmt.Errorf("submit report %s: %w", r.ID, err)
	}

	s.logger.Info(map[string]any{
		"report_id": r.ID,
		"alerts":    len(r.Alerts),
		"referrers": len(r.Referrers),
	}, "report submitted")
	return r, nil
}
