// Package report delivers user-submitted reports to the remote collection endpoint.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/haukened/sitewatch/internal/site/domain"
)

// ReportPath is appended to the configured base URL.
const ReportPath = "/v1/reports"

const (
	errBaseURLRequired = "report base url is required"
	errInvalidBaseURL  = "invalid report base url %q: %w"
	errEncodeFailed    = "encode report: %w"
	errRequestFailed   = "report request failed: %w"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected report status")

// Client posts reports as JSON to <base>/v1/reports.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// Options configures a Client. HTTPClient is injectable for tests.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient validates opts and returns a Client. Timeout defaults to 10 seconds.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New(errBaseURLRequired)
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf(errInvalidBaseURL, opts.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf(errInvalidBaseURL, opts.BaseURL, errors.New("scheme and host are required"))
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	return &Client{
		endpoint: strings.TrimRight(opts.BaseURL, "/") + ReportPath,
		timeout:  opts.Timeout,
		http:     opts.HTTPClient,
	}, nil
}

// Endpoint returns the full URL reports are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts r. Any 2xx status is success; anything else is wrapped in
// ErrUnexpectedStatus together with the status code.
func (c *Client) Submit(ctx context.Context, r domain.Report) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf(errEncodeFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf(errRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf(errRequestFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}
