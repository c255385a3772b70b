// Package scraper fetches a results-profile page, either with a plain HTTP
// client or through a headless browser for pages that only render their
// results table from JavaScript.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one page fetch end to end.
const DefaultTimeout = 60 * time.Second

// Options selects and configures the fetch strategy.
type Options struct {
	Timeout          time.Duration
	RenderJavaScript bool
	UserAgent        string
}

// Fetcher retrieves the raw HTML of one page. Implementations fail with a
// *FetchError on non-success upstream responses and timeouts; those are the
// only errors the hosting layer surfaces to callers.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError describes a failed page fetch. StatusCode is 0 when the
// request never produced a response (network error, timeout).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: non-success status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// New returns the fetcher matching the options: a headless browser when
// RenderJavaScript is set, a plain HTTP client otherwise.
func New(opts Options) Fetcher {
	if opts.RenderJavaScript {
		return NewRenderer(opts)
	}
	return NewClient(opts)
}

// Client fetches pages with a plain HTTP GET.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a Client with the configured timeout.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: opts.UserAgent,
	}
}

// Fetch downloads the HTML content of url and returns it as a string.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return string(body), nil
}
