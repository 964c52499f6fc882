package signals

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
	"github.com/haukened/sitewatch/internal/site/repos/topsites"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// memoryHistory filters a fixed visit list by window, like a real provider.
type memoryHistory struct {
	items []domain.HistoryItem
}

func (m *memoryHistory) Search(_ context.Context, start, end time.Time) ([]domain.HistoryItem, error) {
	var out []domain.HistoryItem
	for _, it := range m.items {
		if !it.VisitTime.Before(start) && !it.VisitTime.After(end) {
			out = append(out, it)
		}
	}
	return out, nil
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) Search(ctx context.Context, start, end time.Time) ([]domain.HistoryItem, error) {
	args := m.Called(ctx, start, end)
	items, _ := args.Get(0).([]domain.HistoryItem)
	return items, args.Error(1)
}

type MockReferrers struct {
	mock.Mock
}

func (m *MockReferrers) ReferrerChain(ctx context.Context, tabID int) ([]domain.ReferrerEntry, error) {
	args := m.Called(ctx, tabID)
	chain, _ := args.Get(0).([]domain.ReferrerEntry)
	return chain, args.Error(1)
}

func newResolver() SuffixResolver {
	return publicsuffix.NewResolver(publicsuffix.NewStore(publicsuffix.DefaultPatterns()))
}

func newEvaluator(opts Options) *Evaluator {
	if opts.Suffixes == nil {
		opts.Suffixes = newResolver()
	}
	if opts.Clock == nil {
		opts.Clock = &clock.MockClock{CurrentTime: testNow}
	}
	return New(opts)
}

func TestIsIDN(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"xn--bcher-kva.de", true},
		{"www.xn--bcher-kva.de", true},
		{"example.xn--p1ai", true},
		{"example.com", false},
		{"axn--b.com", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsIDN(tc.host), tc.host)
	}
}

func TestHasManySubdomains(t *testing.T) {
	e := newEvaluator(Options{})
	cases := []struct {
		host string
		want bool
	}{
		{"a.b.c.example.com", true},
		{"b.c.example.com", false},
		{"a.b.c.example.co.uk", true},
		{"b.c.example.co.uk", false},
		// private suffixes are honored: blogspot.com is the suffix here
		{"a.b.foo.blogspot.com", false},
		{"a.b.c.foo.blogspot.com", true},
		{"example.com", false},
		{"com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.HasManySubdomains(tc.host), tc.host)
	}
}

// Hosts under ccTLDs and second-level suffixes outside the common gTLDs
// must resolve against the full suffix list.
func TestHasManySubdomains_CountryTLDs(t *testing.T) {
	e := newEvaluator(Options{})
	for _, host := range []string{
		"b.c.example.nl", "b.c.example.es", "b.c.example.it", "b.c.example.ch",
		"b.c.example.com.mx", "b.c.example.com.br", "b.c.example.co.za",
	} {
		assert.False(t, e.HasManySubdomains(host), host)
	}
	assert.True(t, e.HasManySubdomains("a.b.c.example.nl"))
	assert.True(t, e.HasManySubdomains("a.b.c.example.com.mx"))
}

func TestHasLongSubdomains(t *testing.T) {
	e := newEvaluator(Options{})
	long := strings.Repeat("a", LongSubdomainThreshold)
	short := strings.Repeat("a", LongSubdomainThreshold-1)

	assert.True(t, e.HasLongSubdomains(long+".example.com"))
	assert.True(t, e.HasLongSubdomains("www."+long+".com"))
	assert.False(t, e.HasLongSubdomains(short+".example.com"))
	assert.False(t, e.HasLongSubdomains("www.example.com"))
	// the registrable label counts, the suffix does not
	assert.True(t, e.HasLongSubdomains(long+".co.uk"))
	assert.False(t, e.HasLongSubdomains("short.co.uk"))
}

func TestIsTopSite(t *testing.T) {
	h := topsites.NewHolder()
	e := newEvaluator(Options{TopSites: h})

	// not loaded yet
	assert.False(t, e.IsTopSite("www.google.com"))

	h.Store(topsites.NewSet([]string{"google.com", "bbc.co.uk", "foo.blogspot.com"}, topsites.DefaultFPRate))
	assert.True(t, e.IsTopSite("google.com"))
	assert.True(t, e.IsTopSite("mail.google.com"))
	assert.True(t, e.IsTopSite("WWW.Google.COM"))
	assert.True(t, e.IsTopSite("www.bbc.co.uk"))
	assert.True(t, e.IsTopSite("x.foo.blogspot.com"))
	assert.False(t, e.IsTopSite("google.com.evil.example"))
	assert.False(t, e.IsTopSite("co.uk"))

	assert.False(t, newEvaluator(Options{}).IsTopSite("google.com"))
}

func TestVisitedBeforeToday(t *testing.T) {
	day := 24 * time.Hour
	hist := &memoryHistory{items: []domain.HistoryItem{
		{URL: "https://visitedyesterday.test/page", VisitTime: testNow.Add(-day)},
		{URL: "https://today.test/", VisitTime: testNow.Add(-time.Hour)},
		{URL: "https://old.test/", VisitTime: testNow.Add(-91 * day)},
		{URL: "https://edge.test/", VisitTime: testNow.Add(-90 * day)},
		{URL: "not a url", VisitTime: testNow.Add(-2 * day)},
	}}
	e := newEvaluator(Options{History: hist})
	ctx := context.Background()

	assert.True(t, e.VisitedBeforeToday(ctx, "visitedyesterday.test"))
	assert.True(t, e.VisitedBeforeToday(ctx, "edge.test"))
	assert.False(t, e.VisitedBeforeToday(ctx, "today.test"))
	assert.False(t, e.VisitedBeforeToday(ctx, "old.test"))
	assert.False(t, e.VisitedBeforeToday(ctx, "sub.visitedyesterday.test"))
	assert.False(t, e.VisitedBeforeToday(ctx, "never.test"))
}

func TestVisitedBeforeToday_Unavailable(t *testing.T) {
	ctx := context.Background()

	// no provider
	assert.True(t, newEvaluator(Options{}).VisitedBeforeToday(ctx, "never.test"))

	// empty window means history is off
	empty := &memoryHistory{items: []domain.HistoryItem{
		{URL: "https://today.test/", VisitTime: testNow},
	}}
	assert.True(t, newEvaluator(Options{History: empty}).VisitedBeforeToday(ctx, "never.test"))

	// provider error
	m := &MockHistory{}
	m.On("Search", mock.Anything, testNow.Add(-HistoryLookback), testNow.Add(-HistoryRecency)).
		Return(nil, errors.New("history disabled"))
	assert.True(t, newEvaluator(Options{History: m}).VisitedBeforeToday(ctx, "never.test"))
	m.AssertExpectations(t)
}

func TestHasMultipleURLShortenerRedirects(t *testing.T) {
	cases := []struct {
		name string
		urls domain.URLSet
		want bool
	}{
		{"two services", domain.NewURLSet("https://bit.ly/a", "https://t.co/b"), true},
		{"same service twice", domain.NewURLSet("https://bit.ly/a", "https://bit.ly/b"), true},
		{"subdomain of service", domain.NewURLSet("https://www.bit.ly/a", "http://TinyURL.com/x"), true},
		{"one shortener", domain.NewURLSet("https://bit.ly/a", "https://example.com/"), false},
		{"lookalike host", domain.NewURLSet("https://notbit.ly/a", "https://bit.ly/b"), false},
		{"empty", domain.NewURLSet(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasMultipleURLShortenerRedirects(tc.urls))
		})
	}
}

func TestRedirectsThroughSuspiciousTLD(t *testing.T) {
	e := newEvaluator(Options{})
	assert.True(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet("https://example.com/", "http://free-prizes.tk/claim")))
	assert.True(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet("https://a.b.xyz/")))
	assert.False(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet("https://tk.example.com/")))
	assert.False(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet("https://foo.github.io/")))
	assert.False(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet("::not a url")))
	assert.False(t, e.RedirectsThroughSuspiciousTLD(domain.NewURLSet()))
}

func TestFetchRedirectURLs(t *testing.T) {
	const page = "https://landing.example/"
	chain := []domain.ReferrerEntry{
		{
			URLType:     domain.URLTypeClientRedirect,
			ReferrerURL: "https://a.example/",
			ServerRedirectChain: []domain.ServerRedirect{
				{URL: "https://bit.ly/x"},
				{URL: page},
				{URL: ""},
			},
		},
		{URLType: domain.URLTypeClientRedirect, ReferrerURL: page},
		{
			URLType:             domain.URLTypeLandingReferrer,
			ReferrerURL:         "https://d.example/",
			ServerRedirectChain: []domain.ServerRedirect{{URL: "https://t.co/y"}},
		},
		{URLType: domain.URLTypeClientRedirect, ReferrerURL: "https://unrelated.example/"},
	}
	m := &MockReferrers{}
	m.On("ReferrerChain", mock.Anything, 3).Return(chain, nil)
	e := newEvaluator(Options{Referrers: m})

	got := e.FetchRedirectURLs(context.Background(), page, 3)
	assert.Equal(t, []string{
		"https://a.example/",
		"https://bit.ly/x",
		"https://d.example/",
		"https://t.co/y",
	}, got.Sorted())
	assert.False(t, got.Has(page))
	assert.True(t, e.HasReferrers())
	m.AssertExpectations(t)
}

func TestFetchRedirectURLs_Unavailable(t *testing.T) {
	e := newEvaluator(Options{})
	assert.False(t, e.HasReferrers())
	assert.Zero(t, e.FetchRedirectURLs(context.Background(), "https://x.example/", 1).Len())

	m := &MockReferrers{}
	m.On("ReferrerChain", mock.Anything, 1).Return(nil, errors.New("no such tab"))
	e = newEvaluator(Options{Referrers: m})
	assert.Zero(t, e.FetchRedirectURLs(context.Background(), "https://x.example/", 1).Len())
}

func TestIsTopSite_BundledList(t *testing.T) {
	domains, err := topsites.DefaultSource()()
	assert.NoError(t, err)
	h := topsites.NewHolder()
	h.Store(topsites.NewSet(domains, topsites.DefaultFPRate))
	e := newEvaluator(Options{TopSites: h})

	for _, host := range []string{
		"www.google.com", "www.google.nl", "www.amazon.de", "news.bbc.co.uk",
		"www.gov.uk", "github.com", "www.chase.com",
	} {
		assert.True(t, e.IsTopSite(host), host)
	}
	assert.False(t, e.IsTopSite("google.nl.example.com"))
}
