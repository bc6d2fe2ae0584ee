package discovery

import (
	"context"
	"io"
	"strings"
	"sync"

	"feedfinder/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
	finalURL   string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingBody{Reader: strings.NewReader(m.body), resp: m}
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func (m *mockResponse) FinalURL() string {
	return m.finalURL
}

type trackingBody struct {
	io.Reader
	resp *mockResponse
}

func (b *trackingBody) Close() error {
	b.resp.closed = true
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
