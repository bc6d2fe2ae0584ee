// ABOUTME: Feature flag management for toggling API surfaces at deploy time
// ABOUTME: Flags come from FEATURE_* environment variables with per-flag defaults

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// RemoteFetchEnabled exposes POST /discover, which fetches pages server-side
	RemoteFetchEnabled FeatureFlag = "remote_fetch_enabled"

	// RateLimitEnabled enables per-client rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// RequestLoggingEnabled enables request start/finish logging
	RequestLoggingEnabled FeatureFlag = "request_logging_enabled"
)

// All lists every defined flag
var All = []FeatureFlag{RemoteFetchEnabled, RateLimitEnabled, RequestLoggingEnabled}

// Defaults are the states used when no environment variable is set
var Defaults = map[FeatureFlag]bool{
	RemoteFetchEnabled:    true,
	RateLimitEnabled:      true,
	RequestLoggingEnabled: true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	defaults  map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates an environment-based manager where unset flags are off
func NewEnvManager(prefix string) *EnvManager {
	return NewEnvManagerWithDefaults(prefix, nil)
}

// NewEnvManagerWithDefaults creates an environment-based manager where unset
// flags take their state from defaults
func NewEnvManagerWithDefaults(prefix string, defaults map[FeatureFlag]bool) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	copied := make(map[FeatureFlag]bool, len(defaults))
	for k, v := range defaults {
		copied[k] = v
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		defaults:  copied,
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if enabled, ok := m.overrides[flag]; ok {
		return enabled
	}

	value := strings.ToLower(strings.TrimSpace(os.Getenv(m.prefix + strings.ToUpper(string(flag)))))
	if value == "" {
		return m.defaults[flag]
	}

	return value == "true" || value == "1" || value == "enabled"
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticManager{
		flags: copied,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool)
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
