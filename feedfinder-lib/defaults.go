// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the fetch client and loggers

package feedfinder

import (
	"time"

	"feedfinder/core/interfaces"
	httpInfra "feedfinder/infrastructure/http/standard"
	loggerInfra "feedfinder/infrastructure/logger/standard"
)

// DefaultTimeout is the page fetch timeout used when none is configured
const DefaultTimeout = 30 * time.Second

// DefaultHTTPClient creates the retrying HTTP client with DefaultTimeout
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(DefaultTimeout)
}

// DefaultLogger creates a logrus-backed logger writing warnings and above to stderr
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewStandardLogger(loggerInfra.WithLevel("warn"))
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// WithDefaultDependencies fills in any dependency not set by an earlier option
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.HTTPClient == nil {
			c.HTTPClient = httpInfra.NewStandardHTTPClient(c.Timeout)
		}
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
