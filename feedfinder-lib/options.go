// ABOUTME: Configuration options for the FeedFinder library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package feedfinder

import (
	"time"

	"feedfinder/core/detect"
	"feedfinder/core/interfaces"
)

// ErrorPolicy decides what happens when a candidate reference cannot be resolved
type ErrorPolicy = detect.ErrorPolicy

const (
	// FailFast aborts detection on the first unresolvable candidate
	FailFast = detect.FailFast

	// SkipInvalid drops unresolvable candidates and keeps going
	SkipInvalid = detect.SkipInvalid
)

// Config holds the configuration for the client
type Config struct {
	// HTTPClient fetches pages for Discover. When nil a default client is
	// built from Timeout.
	HTTPClient interfaces.HTTPClient

	Logger interfaces.Logger

	ErrorPolicy ErrorPolicy

	// Timeout bounds one page fetch of the default HTTP client
	Timeout time.Duration

	// MaxBodyBytes caps how much of a fetched page is read
	MaxBodyBytes int64

	// Concurrency bounds parallel fetches in DiscoverAll
	Concurrency int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewError(ErrorTypeConfiguration, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithErrorPolicy sets how unresolvable candidates are handled
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(c *Config) error {
		if policy != FailFast && policy != SkipInvalid {
			return NewError(ErrorTypeConfiguration, "unknown error policy").
				WithContext("policy", policy.String())
		}
		c.ErrorPolicy = policy
		return nil
	}
}

// WithTimeout sets the page fetch timeout of the default HTTP client.
// It has no effect on a client supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithMaxBodyBytes caps how much of a fetched page is read
func WithMaxBodyBytes(n int64) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewError(ErrorTypeConfiguration, "max body bytes must be positive")
		}
		c.MaxBodyBytes = n
		return nil
	}
}

// WithConcurrency bounds parallel fetches in DiscoverAll
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewError(ErrorTypeConfiguration, "concurrency must be at least 1")
		}
		c.Concurrency = n
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:      DefaultLogger(),
		ErrorPolicy: FailFast,
		Timeout:     DefaultTimeout,
	}
}
