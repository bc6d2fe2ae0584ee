// ABOUTME: Main entry point for the FeedFinder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedfinder/api"
	"feedfinder/api/handlers"
	"feedfinder/api/middleware"
	"feedfinder/core/detect"
	"feedfinder/core/discovery"
	"feedfinder/core/interfaces"
	stdhttp "feedfinder/infrastructure/http/standard"
	stdlogger "feedfinder/infrastructure/logger/standard"
	"feedfinder/pkg/config"
	"feedfinder/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := stdlogger.NewStandardLogger(
		stdlogger.WithLevel(cfg.Log.Level),
		stdlogger.WithFormat(stdlogger.Format(cfg.Log.Format)),
	)

	policy, err := detect.ParseErrorPolicy(cfg.Discovery.ErrorPolicy)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	trustedProxies, err := config.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flags := featureflags.NewEnvManagerWithDefaults("FEATURE_", featureflags.Defaults)

	logger.Info("Starting FeedFinder API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"error_policy": policy.String(),
		"concurrency":  cfg.Discovery.Concurrency,
		"flags":        flags.GetAllFlags(),
	})

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Discovery.FetchTimeout,
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	detector := detect.New(detect.WithErrorPolicy(policy), detect.WithLogger(logger))
	discoveryService := discovery.NewService(deps, detector, discovery.Config{
		MaxBodyBytes: cfg.Discovery.MaxBodyBytes,
		Concurrency:  cfg.Discovery.Concurrency,
	})

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
		Flags:      flags,

		TrustedProxies: trustedProxies,
	})

	handlers.NewDiscoverHandler(discoveryService, flags).RegisterRoutes(humaAPI)

	// WriteTimeout leaves room for a full batch of fetches
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Discovery.FetchTimeout*2 + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
