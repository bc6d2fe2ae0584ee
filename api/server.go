// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS and flag-gated middleware

package api

import (
	"context"
	"net/netip"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"feedfinder/api/middleware"
	"feedfinder/core/interfaces"
	"feedfinder/pkg/featureflags"
)

const (
	apiTitle   = "FeedFinder API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
	Flags      featureflags.Manager

	// TrustedProxies may set X-Forwarded-For for rate limiting
	TrustedProxies []netip.Prefix
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()
	return humachi.New(router, newHumaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured. Request
// logging and rate limiting each follow their feature flag; a nil Flags
// manager uses the defaults.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := newRouter()

	flags := cfg.Flags
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	ctx := context.Background()

	if cfg.Logger != nil && flags.IsEnabled(ctx, featureflags.RequestLoggingEnabled) {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 && flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, middleware.WithTrustedProxies(cfg.TrustedProxies...))
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	return humachi.New(router, newHumaConfig()), router
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// CORS must run first so preflight requests skip the limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	return router
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Finds candidate RSS, Atom and JSON feed URLs for web pages"
	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return config
}
