package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/sitewatch/internal/site/domain"
)

func sampleReport() domain.Report {
	return domain.Report{
		ID:         "4b8d6f1e-1c4e-4f5a-9a55-2f0d8a7c1e11",
		URL:        "https://phish.example/login",
		Screenshot: []byte{0x89, 'P', 'N', 'G'},
		DOM:        "<html></html>",
		Referrers:  []string{"https://bit.ly/x"},
		Alerts:     []string{"Site is not in the top 1k sites"},
		CreatedAt:  time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "not-a-url"})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: "://bad"})
	assert.Error(t, err)

	c, err := NewClient(Options{BaseURL: "https://reports.example/"})
	require.NoError(t, err)
	assert.Equal(t, "https://reports.example/v1/reports", c.Endpoint())
	assert.Equal(t, 10*time.Second, c.timeout)
}

func TestClient_Submit_Success(t *testing.T) {
	var got domain.Report
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ReportPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)
	require.NoError(t, c.Submit(context.Background(), sampleReport()))

	want := sampleReport()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.URL, got.URL)
	assert.Equal(t, want.Screenshot, got.Screenshot)
	assert.Equal(t, want.Referrers, got.Referrers)
	assert.Equal(t, want.Alerts, got.Alerts)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestClient_Submit_Non2xx(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusMultipleChoices} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		}))
		c, err := NewClient(Options{BaseURL: srv.URL})
		require.NoError(t, err)

		err = c.Submit(context.Background(), sampleReport())
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), strconv.Itoa(code))
		srv.Close()
	}
}

func TestClient_Submit_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := NewClient(Options{BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)
	err = c.Submit(context.Background(), sampleReport())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_Submit_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	err = c.Submit(context.Background(), sampleReport())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
