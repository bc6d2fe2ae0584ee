// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Provides leveled structured logging in text or JSON format

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the log line encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Option configures a StandardLogger
type Option func(*logrus.Logger)

// WithLevel sets the minimum level. Unknown names leave the level at info.
func WithLevel(level string) Option {
	return func(l *logrus.Logger) {
		if lvl, err := logrus.ParseLevel(strings.TrimSpace(level)); err == nil {
			l.SetLevel(lvl)
		}
	}
}

// WithFormat sets the output encoding
func WithFormat(format Format) Option {
	return func(l *logrus.Logger) {
		switch format {
		case FormatJSON:
			l.SetFormatter(&logrus.JSONFormatter{})
		default:
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	}
}

// WithOutput redirects log output
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	log *logrus.Logger
}

// NewStandardLogger creates a logger writing text lines at info level to stderr
func NewStandardLogger(opts ...Option) *StandardLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	for _, opt := range opts {
		opt(l)
	}

	return &StandardLogger{log: l}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// Level reports the active minimum level
func (l *StandardLogger) Level() string {
	return l.log.GetLevel().String()
}

func (l *StandardLogger) entry(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}
