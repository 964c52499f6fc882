package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haukened/sitewatch/internal/site/common/clock"
	"github.com/haukened/sitewatch/internal/site/common/log"
	"github.com/haukened/sitewatch/internal/site/domain"
	"github.com/haukened/sitewatch/internal/site/repos/publicsuffix"
)

type MockAlerts struct {
	mock.Mock
}

func (m *MockAlerts) Evaluate(ctx context.Context, pageURL string, tabID int) domain.Signals {
	return m.Called(ctx, pageURL, tabID).Get(0).(domain.Signals)
}

type MockReports struct {
	mock.Mock
}

func (m *MockReports) Submit(ctx context.Context, req domain.ReportRequest) (domain.Report, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Report), args.Error(1)
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) Record(item domain.HistoryItem) error {
	return m.Called(item).Error(0)
}

type MockReferrers struct {
	mock.Mock
}

func (m *MockReferrers) Put(tabID int, chain []domain.ReferrerEntry) error {
	return m.Called(tabID, chain).Error(0)
}

func (m *MockReferrers) Forget(tabID int) {
	m.Called(tabID)
}

type fixture struct {
	alerts    *MockAlerts
	reports   *MockReports
	history   *MockHistory
	referrers *MockReferrers
	handler   http.Handler
	now       time.Time
}

func newFixture() *fixture {
	f := &fixture{
		alerts:    &MockAlerts{},
		reports:   &MockReports{},
		history:   &MockHistory{},
		referrers: &MockReferrers{},
		now:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	f.handler = NewRouter(Services{
		Alerts:    f.alerts,
		Reports:   f.reports,
		History:   f.history,
		Referrers: f.referrers,
		Suffixes:  publicsuffix.NewResolver(publicsuffix.NewStore(publicsuffix.DefaultPatterns())),
		Clock:     &clock.MockClock{CurrentTime: f.now},
	}, log.NewNoopLogger())
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Alerts(t *testing.T) {
	f := newFixture()
	f.alerts.On("Evaluate", mock.Anything, "https://a.b.c.d.example.com/", 4).Return(domain.Signals{
		Host:           "a.b.c.d.example.com",
		VisitedBefore:  true,
		ManySubdomains: true,
	})

	rec := f.do(http.MethodPost, "/v1/alerts", `{"url":"https://a.b.c.d.example.com/","tab_id":4}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp alertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a.b.c.d.example.com", resp.Host)
	assert.Equal(t, []alertView{
		{Name: "notTopSite", Message: "Site is not in the top 1k sites"},
		{Name: "manySubdomains", Message: "Domain has unusually many subdomains"},
	}, resp.Alerts)
}

func TestRouter_Alerts_NoAlertsIsEmptyArray(t *testing.T) {
	f := newFixture()
	f.alerts.On("Evaluate", mock.Anything, "about:blank", 0).Return(domain.Signals{})

	rec := f.do(http.MethodPost, "/v1/alerts", `{"url":"about:blank","tab_id":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"host":"","alerts":[]}`, rec.Body.String())
}

func TestRouter_Alerts_BadRequests(t *testing.T) {
	f := newFixture()
	for _, body := range []string{
		``,
		`{`,
		`{"tab_id":1}`,
		`{"url":"https://x.example/","tab_id":-1}`,
		`{"url":"https://x.example/","unknown":true}`,
	} {
		rec := f.do(http.MethodPost, "/v1/alerts", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	f.alerts.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_Alerts_KindsFilter(t *testing.T) {
	f := newFixture()
	f.alerts.On("Evaluate", mock.Anything, "https://a.b.c.d.example.com/", 0).Return(domain.Signals{
		Host:           "a.b.c.d.example.com",
		ManySubdomains: true,
		LongSubdomains: true,
	})

	rec := f.do(http.MethodPost, "/v1/alerts",
		`{"url":"https://a.b.c.d.example.com/","kinds":["ManySubdomains","longSubdomains"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp alertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []alertView{
		{Name: "manySubdomains", Message: "Domain has unusually many subdomains"},
		{Name: "longSubdomains", Message: "Domain has unusually long subdomains"},
	}, resp.Alerts)

	rec = f.do(http.MethodPost, "/v1/alerts",
		`{"url":"https://a.b.c.d.example.com/","kinds":["isIDN"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"host":"a.b.c.d.example.com","alerts":[]}`, rec.Body.String())
}

func TestRouter_Alerts_UnknownKind(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/v1/alerts", `{"url":"https://x.example/","kinds":["notTopSite","bogus"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported AlertKind")
	f.alerts.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_Reports(t *testing.T) {
	f := newFixture()
	f.reports.On("Submit", mock.Anything, domain.ReportRequest{
		URL:              "https://phish.example/",
		TabID:            2,
		Screenshot:       []byte("png"),
		DOM:              "<html/>",
		IncludeRedirects: true,
	}).Return(domain.Report{ID: "r-1"}, nil)

	rec := f.do(http.MethodPost, "/v1/reports",
		`{"url":"https://phish.example/","tab_id":2,"screenshot":"cG5n","dom":"<html/>","include_redirects":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"r-1"}`, rec.Body.String())
}

func TestRouter_Reports_Failures(t *testing.T) {
	f := newFixture()
	f.reports.On("Submit", mock.Anything, mock.MatchedBy(func(r domain.ReportRequest) bool {
		return r.URL == "https://down.example/"
	})).Return(domain.Report{}, errors.New("unexpected report status: 503"))
	f.reports.On("Submit", mock.Anything, mock.MatchedBy(func(r domain.ReportRequest) bool {
		return r.URL == "mailto:x@y.example"
	})).Return(domain.Report{}, domain.ErrInvalidReportURL)

	rec := f.do(http.MethodPost, "/v1/reports", `{"url":"https://down.example/","tab_id":1}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = f.do(http.MethodPost, "/v1/reports", `{"url":"mailto:x@y.example","tab_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/v1/reports", `{"url":"","tab_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Reports_Disabled(t *testing.T) {
	h := NewRouter(Services{Suffixes: publicsuffix.NewResolver(publicsuffix.NewStore(publicsuffix.DefaultPatterns()))}, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reports", strings.NewReader(`{"url":"https://a.example/"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_History(t *testing.T) {
	f := newFixture()
	visited := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	f.history.On("Record", domain.HistoryItem{URL: "https://a.example/", VisitTime: visited}).Return(nil)
	f.history.On("Record", domain.HistoryItem{URL: "https://b.example/", VisitTime: f.now}).Return(nil)
	f.history.On("Record", domain.HistoryItem{URL: "https://c.example/", VisitTime: f.now}).Return(errors.New("disk full"))

	rec := f.do(http.MethodPost, "/v1/history", `{"url":"https://a.example/","visit_time":"2025-06-01T08:00:00Z"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// visit_time defaults to now
	rec = f.do(http.MethodPost, "/v1/history", `{"url":"https://b.example/"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPost, "/v1/history", `{"url":"https://c.example/"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = f.do(http.MethodPost, "/v1/history", `{"url":"not a url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.history.AssertExpectations(t)
}

func TestRouter_Referrers(t *testing.T) {
	f := newFixture()
	chain := []domain.ReferrerEntry{
		{URLType: domain.URLTypeClientRedirect, ReferrerURL: "https://bit.ly/a"},
		{URLType: domain.URLTypeReferrer, ReferrerURL: "https://news.example/", ServerRedirectChain: []domain.ServerRedirect{{URL: "https://t.co/x"}}},
	}
	f.referrers.On("Put", 12, chain).Return(nil)
	f.referrers.On("Put", 13, mock.Anything).Return(errors.New("unsupported url type"))
	f.referrers.On("Forget", 12).Return()

	body := `[
		{"urlType":"CLIENT_REDIRECT","referrerUrl":"https://bit.ly/a"},
		{"urlType":"REFERRER","referrerUrl":"https://news.example/","serverRedirectChain":[{"url":"https://t.co/x"}]}
	]`
	rec := f.do(http.MethodPut, "/v1/tabs/12/referrers", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodPut, "/v1/tabs/13/referrers", `[{"urlType":"BOGUS"}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/v1/tabs/abc/referrers", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPut, "/v1/tabs/-4/referrers", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodDelete, "/v1/tabs/12/referrers", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	f.referrers.AssertExpectations(t)
}

func TestRouter_Suffix(t *testing.T) {
	f := newFixture()
	cases := []struct {
		query string
		want  suffixResponse
	}{
		{"host=www.google.co.uk", suffixResponse{"www.google.co.uk", "co.uk", "google.co.uk"}},
		{"host=Foo.Blogspot.com.", suffixResponse{"foo.blogspot.com", "blogspot.com", "foo.blogspot.com"}},
		{"host=foo.blogspot.com&icann_only=true", suffixResponse{"foo.blogspot.com", "com", "blogspot.com"}},
		{"host=localhost", suffixResponse{"localhost", "localhost", ""}},
		{"host=www.google.nl", suffixResponse{"www.google.nl", "nl", "google.nl"}},
	}
	for _, tc := range cases {
		rec := f.do(http.MethodGet, "/v1/suffix?"+tc.query, "")
		require.Equal(t, http.StatusOK, rec.Code, tc.query)
		var got suffixResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, tc.want, got, tc.query)
	}

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/v1/suffix", "").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/v1/suffix?host=a.com&icann_only=maybe", "").Code)
}

func TestRouter_HealthAndMethods(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = f.do(http.MethodGet, "/v1/alerts", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = f.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
