package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) add(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.add("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.add("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.add("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.add("ERROR", msg, fields) }

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/detect?verbose=1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "INFO", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, "POST", startLog.Fields["method"])
	assert.Equal(t, "/detect", startLog.Fields["path"])
	assert.Equal(t, "verbose=1", startLog.Fields["query"])
	assert.NotEmpty(t, startLog.Fields["request_id"])

	completeLog := logger.logs[1]
	assert.Equal(t, "INFO", completeLog.Level)
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, "POST", completeLog.Fields["method"])
	assert.Equal(t, "/detect", completeLog.Fields["path"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLogs   int
		expectError    bool
	}{
		{"200 OK", http.StatusOK, 2, false},
		{"404 Not Found", http.StatusNotFound, 2, false},
		{"502 Bad Gateway", http.StatusBadGateway, 3, true},
		{"503 Service Unavailable", http.StatusServiceUnavailable, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

			require.Len(t, logger.logs, tt.expectedLogs)
			assert.Equal(t, tt.responseStatus, logger.logs[1].Fields["status"])

			if tt.expectError {
				errorLog := logger.logs[2]
				assert.Equal(t, "ERROR", errorLog.Level)
				assert.Contains(t, errorLog.Message, "server error")
			}
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	completeLog := logger.logs[1]
	assert.NotNil(t, completeLog.Fields["duration"])
	durationMs := completeLog.Fields["duration_ms"].(int64)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_IncludesRequestID(t *testing.T) {
	logger := &MockLogger{}
	var fromContext string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		fromContext = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	requestID1 := logger.logs[0].Fields["request_id"].(string)
	requestID2 := logger.logs[1].Fields["request_id"].(string)

	assert.Len(t, requestID1, 36)
	assert.Equal(t, requestID1, requestID2)
	assert.Equal(t, requestID1, fromContext)
	assert.Equal(t, requestID1, rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggingMiddleware_KeepsValidIncomingRequestID(t *testing.T) {
	const incoming = "6f1c7c3e-8d5b-4a5e-9b8f-2d7e1f0a3c4b"

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"valid uuid kept", incoming, true},
		{"garbage replaced", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			req := httptest.NewRequest("GET", "/health", nil)
			req.Header.Set(RequestIDHeader, tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			if tt.keep {
				assert.Equal(t, incoming, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLoggingRoundTripper(t *testing.T) {
	logger := &MockLogger{}
	rt := &LoggingRoundTripper{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
		}),
		Logger: logger,
	}

	ctx := WithRequestID(context.Background(), "req-1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com/", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "Outgoing HTTP request", logger.logs[0].Message)
	assert.Equal(t, "req-1", logger.logs[0].Fields["request_id"])
	assert.Equal(t, "Outgoing HTTP response", logger.logs[1].Message)
	assert.Equal(t, http.StatusOK, logger.logs[1].Fields["status"])
}

func TestLoggingRoundTripper_Error(t *testing.T) {
	logger := &MockLogger{}
	rt := &LoggingRoundTripper{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		}),
		Logger: logger,
	}

	req := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	_, err := rt.RoundTrip(req)
	require.Error(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "WARN", logger.logs[1].Level)
	assert.Contains(t, logger.logs[1].Fields["error"], "connection refused")
}

func TestRequestLogFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/detect?foo=bar", strings.NewReader("body"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(RequestIDHeader, "req-123")
	req.RemoteAddr = "192.168.1.1:1234"

	fields := RequestLogFields(req)

	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/detect", fields["path"])
	assert.Equal(t, "foo=bar", fields["query"])
	assert.Equal(t, "192.168.1.1", fields["remote_ip"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "application/json", fields["content_type"])
}

func TestResponseLogFields(t *testing.T) {
	fields := ResponseLogFields(http.StatusNotFound, 123*time.Millisecond)

	assert.Equal(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, "123ms", fields["duration"])
	assert.Equal(t, int64(123), fields["duration_ms"])
	assert.Equal(t, "404 Not Found", fields["status_text"])
}
