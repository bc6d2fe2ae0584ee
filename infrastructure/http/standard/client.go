// ABOUTME: HTTP client for fetching pages to run feed detection on
// ABOUTME: Retries server errors with exponential backoff and records the post-redirect URL

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"feedfinder/core/interfaces"
)

const (
	maxRetries = 3
	userAgent  = "FeedFinder/1.0 (+https://github.com/feedfinder)"
	acceptHTML = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client *http.Client
}

// Option configures a StandardHTTPClient
type Option func(*http.Client)

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *http.Client) {
		c.Transport = rt
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	client := &http.Client{
		Timeout: timeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return &StandardHTTPClient{client: client}
}

// Get fetches url. Responses with a 5xx status are retried up to maxRetries
// times; the last response is returned as-is so callers can inspect the status.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHTML)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		if resp.StatusCode < 500 || attempt == maxRetries-1 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
		finalURL:   finalURL,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
	finalURL   string
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// FinalURL returns the request URL after redirects were followed
func (r *httpResponse) FinalURL() string {
	return r.finalURL
}
