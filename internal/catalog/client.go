package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/snapcheck/snapcheck/pkg/logging"
)

// DefaultTimeout bounds the index fetch when the caller does not supply
// one.
const DefaultTimeout = 30 * time.Second

// FetchError reports a failed index fetch: a non-2xx response or a
// network failure that is not a timeout.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching story index from %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching story index from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TimeoutError reports an index fetch that exceeded its deadline. Distinct
// from FetchError so callers can tell "unreachable" from "errored".
type TimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("fetching story index from %s: timed out after %s", e.URL, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Client fetches the story index over HTTP.
type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the given index URL.
func NewClient(indexURL string, opts ...Option) *Client {
	c := &Client{
		url:     indexURL,
		timeout: DefaultTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	return c
}

// URL is the index endpoint this client fetches from.
func (c *Client) URL() string { return c.url }

// FetchIndex retrieves and decodes the story index. Timeouts surface as
// *TimeoutError, everything else as *FetchError; both carry the URL.
func (c *Client) FetchIndex(ctx context.Context) (*Index, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: c.url, Timeout: c.timeout, Err: err}
		}
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	var idx Index
	if err := json.NewDecoder(resp.Body).Decode(&idx); err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("decoding index: %w", err)}
	}

	c.logger.Debug("fetched story index",
		"url", c.url,
		"entries", len(idx.Entries),
		"elapsed", time.Since(start))
	return &idx, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
