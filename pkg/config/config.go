// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Reads an optional .env file, then server, logging and discovery settings from the environment

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultEnvFile is loaded by LoadFromEnv when present
const DefaultEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logger configuration
	Log LogConfig

	// Discovery contains page fetching and detection configuration
	Discovery DiscoveryConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error)
	Level string

	// Format is "text" or "json"
	Format string
}

// DiscoveryConfig holds remote discovery configuration
type DiscoveryConfig struct {
	// FetchTimeout bounds a single page fetch
	FetchTimeout time.Duration

	// MaxBodyBytes caps how much of a page is read
	MaxBodyBytes int64

	// Concurrency bounds parallel fetches in a batch
	Concurrency int

	// ErrorPolicy is "fail_fast" or "skip_invalid"
	ErrorPolicy string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests allowed per Window for one client
	Requests int

	// Window is the refill period
	Window time.Duration

	// TrustedProxies are IPs or CIDRs allowed to name the client with
	// X-Forwarded-For. Empty means the peer address is always used.
	TrustedProxies []string
}

// LoadFromEnv loads configuration from environment variables after reading
// DefaultEnvFile if it exists
func LoadFromEnv() (*Config, error) {
	return Load(DefaultEnvFile)
}

// Load reads the given .env files and then the environment. Missing files are
// skipped; variables already set in the process win over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
		Discovery: DiscoveryConfig{
			FetchTimeout: time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT", 15)) * time.Second,
			MaxBodyBytes: int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 5<<20)),
			Concurrency:  getEnvAsIntOrDefault("DISCOVERY_CONCURRENCY", 8),
			ErrorPolicy:  getEnvOrDefault("ERROR_POLICY", "fail_fast"),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window:   time.Duration(getEnvAsIntOrDefault("RATE_WINDOW", 60)) * time.Second,

			TrustedProxies: getEnvAsListOrDefault("TRUSTED_PROXIES", nil),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated variable, dropping empty items
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseTrustedProxies parses IPs and CIDRs. A bare IP covers that address only.
func ParseTrustedProxies(list []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(list))
	for _, item := range list {
		if addr, err := netip.ParseAddr(item); err == nil {
			addr = addr.Unmap()
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		prefix, err := netip.ParsePrefix(item)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", item)
		}
		prefixes = append(prefixes, prefix.Masked())
	}
	return prefixes, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.Discovery.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Discovery.MaxBodyBytes <= 0 {
		return errors.New("max body bytes must be positive")
	}

	if c.Discovery.Concurrency < 1 {
		return errors.New("discovery concurrency must be at least 1")
	}

	if c.Discovery.ErrorPolicy != "fail_fast" && c.Discovery.ErrorPolicy != "skip_invalid" {
		return errors.New("error policy must be 'fail_fast' or 'skip_invalid'")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit must allow at least 1 request per window")
	}

	if _, err := ParseTrustedProxies(c.RateLimit.TrustedProxies); err != nil {
		return err
	}

	return nil
}
