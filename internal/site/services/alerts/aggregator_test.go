package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
	"github.com/haukened/sitewatch/internal/site/repos/referrers"
	"github.com/haukened/sitewatch/internal/site/repos/topsites"
	"github.com/haukened/sitewatch/internal/site/services/signals"
)

type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) IsTopSite(host string) bool {
	return m.Called(host).Bool(0)
}

func (m *MockEvaluator) VisitedBeforeToday(ctx context.Context, host string) bool {
	return m.Called(ctx, host).Bool(0)
}

func (m *MockEvaluator) HasManySubdomains(host string) bool {
	return m.Called(host).Bool(0)
}

func (m *MockEvaluator) HasLongSubdomains(host string) bool {
	return m.Called(host).Bool(0)
}

func (m *MockEvaluator) HasReferrers() bool {
	return m.Called().Bool(0)
}

func (m *MockEvaluator) FetchRedirectURLs(ctx context.Context, pageURL string, tabID int) domain.URLSet {
	urls, _ := m.Called(ctx, pageURL, tabID).Get(0).(domain.URLSet)
	return urls
}

func (m *MockEvaluator) RedirectsThroughSuspiciousTLD(urls domain.URLSet) bool {
	return m.Called(urls).Bool(0)
}

func hostMock(host string, top, visited, many, long bool) *MockEvaluator {
	m := &MockEvaluator{}
	m.On("IsTopSite", host).Return(top)
	m.On("VisitedBeforeToday", mock.Anything, host).Return(visited)
	m.On("HasManySubdomains", host).Return(many)
	m.On("HasLongSubdomains", host).Return(long)
	return m
}

func TestAggregator_AllHostAlertsInOrder(t *testing.T) {
	const host = "a.b.c.xn--bcher-kva.example"
	m := hostMock(host, false, false, true, true)
	m.On("HasReferrers").Return(false)

	a := New(Options{Evaluator: m})
	got := a.ComputeAlerts(context.Background(), "https://"+host+"/login", 1)

	assert.Equal(t, []string{
		"Site is not in the top 1k sites",
		"Domain uses uncommon characters",
		"You haven't visited this site in the last 3 months",
		"Domain has unusually many subdomains",
		"Domain has unusually long subdomains",
	}, got)
	m.AssertExpectations(t)
	m.AssertNotCalled(t, "FetchRedirectURLs", mock.Anything, mock.Anything, mock.Anything)
}

func TestAggregator_TopSiteNeverIDN(t *testing.T) {
	const host = "xn--bcher-kva.example"
	m := hostMock(host, true, true, false, false)
	m.On("HasReferrers").Return(false)

	a := New(Options{Evaluator: m})
	s := a.Evaluate(context.Background(), "https://"+host+"/", 1)

	assert.True(t, s.TopSite)
	assert.False(t, s.IDN)
	assert.Empty(t, a.ComputeAlerts(context.Background(), "https://"+host+"/", 1))
}

func TestAggregator_RedirectSignals(t *testing.T) {
	const host = "landing.example"
	const page = "https://landing.example/"
	urls := domain.NewURLSet("https://bit.ly/a", "https://t.co/b", "https://x.tk/")
	m := hostMock(host, true, true, false, false)
	m.On("HasReferrers").Return(true)
	m.On("FetchRedirectURLs", mock.Anything, page, 9).Return(urls)
	m.On("RedirectsThroughSuspiciousTLD", urls).Return(true)

	a := New(Options{Evaluator: m})
	got := a.Alerts(context.Background(), page, 9)

	assert.Equal(t, []domain.AlertKind{domain.AlertMultipleURLShorteners, domain.AlertSuspiciousTLD}, got)
	m.AssertExpectations(t)
}

func TestAggregator_EmptyRedirectsSkipRedirectSignals(t *testing.T) {
	const host = "landing.example"
	const page = "https://landing.example/"
	m := hostMock(host, true, true, false, false)
	m.On("HasReferrers").Return(true)
	m.On("FetchRedirectURLs", mock.Anything, page, 2).Return(domain.NewURLSet())

	a := New(Options{Evaluator: m})
	assert.Empty(t, a.Alerts(context.Background(), page, 2))
	m.AssertNotCalled(t, "RedirectsThroughSuspiciousTLD", mock.Anything)
}

func TestAggregator_URLWithoutHost(t *testing.T) {
	m := &MockEvaluator{}
	a := New(Options{Evaluator: m})

	for _, u := range []string{"", "about:blank", "not a url", "http://[::1"} {
		s := a.Evaluate(context.Background(), u, 1)
		assert.Equal(t, domain.Signals{}, s, u)
		assert.Empty(t, a.ComputeAlerts(context.Background(), u, 1), u)
	}
	m.AssertNotCalled(t, "IsTopSite", mock.Anything)
}

func TestAggregator_EndToEnd(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	top := topsites.NewHolder()
	top.Store(topsites.NewSet([]string{"github.com"}, topsites.DefaultFPRate))
	refs, err := referrers.New(8)
	assert.NoError(t, err)
	assert.NoError(t, refs.Put(4, []domain.ReferrerEntry{
		{URLType: domain.URLTypeClientRedirect, ReferrerURL: "https://bit.ly/abc"},
		{URLType: domain.URLTypeReferrer, ReferrerURL: "https://cutt.ly/xyz"},
	}))

	ev := signals.New(signals.Options{
		Clock:     &clock.MockClock{CurrentTime: now},
		Referrers: refs,
		Suffixes:  publicsuffix.NewResolver(publicsuffix.NewStore(publicsuffix.DefaultPatterns())),
		TopSites:  top,
	})
	a := New(Options{Evaluator: ev})

	got := a.ComputeAlerts(context.Background(), "https://Secure-Login.Example.co.uk/verify", 4)
	assert.Equal(t, []string{
		"Site is not in the top 1k sites",
		"Redirected through multiple URL shorteners",
	}, got)

	// github.com is a top site and has no redirects recorded for tab 5
	assert.Empty(t, a.ComputeAlerts(context.Background(), "https://gist.github.com/", 5))

	// bücher.de is converted to its xn-- form before the IDN check
	assert.Equal(t, []domain.AlertKind{domain.AlertNotTopSite, domain.AlertIDN}, a.Alerts(context.Background(), "https://bücher.de/", 5))
}
