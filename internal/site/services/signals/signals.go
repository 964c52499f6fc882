// Package signals holds the individual phishing heuristics evaluated for a page.
package signals

import (
	"context"
	"strings"
	"time"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/common/utils"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
)

const (
	// ManySubdomainsThreshold is the number of non-suffix labels that counts as "many".
	ManySubdomainsThreshold = 4

	// LongSubdomainThreshold is the label length that counts as "long".
	LongSubdomainThreshold = 22

	// Visits count when they fall in [now-HistoryLookback, now-HistoryRecency].
	HistoryLookback = 90 * 24 * time.Hour
	HistoryRecency  = 24 * time.Hour
)

// URLShorteners are hosts of well-known link shortening services.
var URLShorteners = []string{
	"bit.ly", "goo.gl", "tinyurl.com", "ow.ly", "t.co", "is.gd", "buff.ly",
	"adf.ly", "bit.do", "mcaf.ee", "su.pr", "tiny.cc", "cutt.ly", "rebrand.ly",
}

// SuspiciousTLDs are ICANN suffixes with a high share of abusive registrations.
var SuspiciousTLDs = []string{
	"tk", "ml", "ga", "cf", "gq", "xyz", "top", "click", "loan", "work", "buzz", "monster",
}

type Evaluator struct {
	clock     clock.Clock
	history   HistoryProvider
	logger    log.Logger
	referrers ReferrerProvider
	suffixes  SuffixResolver
	topSites  TopSites
}

// Options wires the evaluator's collaborators. Suffixes is required; a nil
// History, Referrers or TopSites is treated as unavailable.
type Options struct {
	Clock     clock.Clock
	History   HistoryProvider
	Logger    log.Logger
	Referrers ReferrerProvider
	Suffixes  SuffixResolver
	TopSites  TopSites
}

func New(opts Options) *Evaluator {
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Evaluator{
		clock:     clk,
		history:   opts.History,
		logger:    log.WithFields(opts.Logger, map[string]any{"component": "signals"}),
		referrers: opts.Referrers,
		suffixes:  opts.Suffixes,
		topSites:  opts.TopSites,
	}
}

// HasReferrers reports whether a referrer chain collaborator is wired.
func (e *Evaluator) HasReferrers() bool {
	return e.referrers != nil
}

// IsIDN reports whether any label of host carries the ACE prefix "xn--".
// host must already be in its ASCII-compatible form.
func IsIDN(host string) bool {
	return strings.HasPrefix(host, "xn--") || strings.Contains(host, ".xn--")
}

// HasManySubdomains reports whether host has at least ManySubdomainsThreshold
// labels left of its public suffix.
func (e *Evaluator) HasManySubdomains(host string) bool {
	return len(e.nonSuffixLabels(host)) >= ManySubdomainsThreshold
}

// HasLongSubdomains reports whether any label left of the public suffix is at
// least LongSubdomainThreshold characters long.
func (e *Evaluator) HasLongSubdomains(host string) bool {
	for _, l := range e.nonSuffixLabels(host) {
		if len(l) >= LongSubdomainThreshold {
			return true
		}
	}
	return false
}

// IsTopSite reports whether the registrable domain of host is a top site.
func (e *Evaluator) IsTopSite(host string) bool {
	if e.topSites == nil {
		return false
	}
	host = strings.ToLower(host)
	registrable := publicsuffix.RegistrableDomain(host, e.suffixes.GetTld(host, false))
	if registrable == "" {
		return false
	}
	return e.topSites.Contains(registrable)
}

// VisitedBeforeToday reports whether host was visited between 90 days and one
// day ago. An empty history, a missing provider or a provider error are all
// read as "history unavailable" and report true.
func (e *Evaluator) VisitedBeforeToday(ctx context.Context, host string) bool {
	if e.history == nil {
		return true
	}
	start, end := clock.Window(e.clock, HistoryLookback, HistoryRecency)
	items, err := e.history.Search(ctx, start, end)
	if err != nil {
		e.logger.Warn(map[string]any{"host": host, "error": err.Error()}, "history search failed")
		return true
	}
	if len(items) == 0 {
		e.logger.Debug(map[string]any{"host": host}, "history empty, treating as unavailable")
		return true
	}
	for _, item := range items {
		visited, err := utils.HostFromURL(item.URL)
		if err != nil {
			continue
		}
		if visited == host {
			return true
		}
	}
	return false
}

// HasMultipleURLShortenerRedirects reports whether at least two URLs in urls
// point at a known URL shortener.
func HasMultipleURLShortenerRedirects(urls domain.URLSet) bool {
	count := 0
	for u := range urls {
		host, err := utils.HostFromURL(u)
		if err != nil {
			continue
		}
		if isShortener(host) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

func isShortener(host string) bool {
	for _, s := range URLShorteners {
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}

// RedirectsThroughSuspiciousTLD reports whether any URL in urls has an ICANN
// suffix listed in SuspiciousTLDs.
func (e *Evaluator) RedirectsThroughSuspiciousTLD(urls domain.URLSet) bool {
	for u := range urls {
		host, err := utils.HostFromURL(u)
		if err != nil {
			continue
		}
		tld := e.suffixes.GetTld(host, true)
		for _, s := range SuspiciousTLDs {
			if tld == s {
				return true
			}
		}
	}
	return false
}

// FetchRedirectURLs walks the referrer chain of tabID from the most recent
// entry. Each entry contributes its referrer URL and its server redirect
// hops; the walk ends after the first entry that is not a client redirect.
// pageURL itself is never collected. Without a referrer provider, or when it
// fails, the result is empty.
func (e *Evaluator) FetchRedirectURLs(ctx context.Context, pageURL string, tabID int) domain.URLSet {
	urls := domain.NewURLSet()
	if e.referrers == nil {
		return urls
	}
	chain, err := e.referrers.ReferrerChain(ctx, tabID)
	if err != nil {
		e.logger.Debug(map[string]any{"tab_id": tabID, "error": err.Error()}, "referrer chain unavailable")
		return urls
	}
	add := func(u string) {
		if u != "" && u != pageURL {
			urls.Add(u)
		}
	}
	for _, entry := range chain {
		add(entry.ReferrerURL)
		for _, hop := range entry.ServerRedirectChain {
			add(hop.URL)
		}
		if !entry.IsClientRedirect() {
			break
		}
	}
	return urls
}

func (e *Evaluator) nonSuffixLabels(host string) []string {
	return publicsuffix.NonSuffixLabels(host, e.suffixes.GetTld(host, false))
}
