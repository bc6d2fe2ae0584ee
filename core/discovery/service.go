// ABOUTME: Discovery service fetches web pages and runs feed detection on them
// ABOUTME: Used by the HTTP API and the CLI; candidates are returned unverified

package discovery

import (
	"context"
	"io"
	"net/url"

	"golang.org/x/sync/errgroup"

	"feedfinder/core/detect"
	"feedfinder/core/domain"
	coreerrors "feedfinder/core/errors"
	"feedfinder/core/interfaces"
	"feedfinder/core/urlresolve"
)

const (
	// DefaultMaxBodyBytes caps how much of a page is read for detection
	DefaultMaxBodyBytes = 5 << 20

	// DefaultConcurrency bounds parallel fetches in a batch
	DefaultConcurrency = 8
)

// Config tunes the discovery service
type Config struct {
	MaxBodyBytes int64
	Concurrency  int
}

// Service implements interfaces.DiscoveryService
type Service struct {
	deps     interfaces.Dependencies
	detector *detect.Detector
	config   Config
}

var _ interfaces.DiscoveryService = (*Service)(nil)

// NewService creates a discovery service. A nil detector uses the fail-fast default.
func NewService(deps interfaces.Dependencies, detector *detect.Detector, config Config) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	if detector == nil {
		detector = detect.New(detect.WithLogger(deps.Logger))
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	return &Service{
		deps:     deps,
		detector: detector,
		config:   config,
	}
}

// DetectHTML runs detection over markup the caller already fetched
func (s *Service) DetectHTML(pageURL, html string) (*domain.DiscoveryResult, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}

	feeds, err := s.detector.Detect(base, html)
	if err != nil {
		return nil, err
	}

	return &domain.DiscoveryResult{
		URL:     pageURL,
		BaseURL: base.String(),
		Feeds:   feeds,
	}, nil
}

// Discover fetches pageURL and detects feeds in the response. Relative
// references resolve against the final URL after redirects.
func (s *Service) Discover(ctx context.Context, pageURL string) (*domain.DiscoveryResult, error) {
	base, err := parsePageURL(pageURL)
	if err != nil {
		return nil, err
	}
	if s.deps.HTTPClient == nil {
		return nil, &coreerrors.ValidationError{Field: "http_client", Message: "remote discovery needs an HTTP client"}
	}

	s.deps.Logger.Debug("Fetching page", map[string]interface{}{
		"url": pageURL,
	})

	resp, err := s.deps.HTTPClient.Get(ctx, base.String())
	if err != nil {
		s.deps.Logger.Warn("Failed to fetch page", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
		return nil, &coreerrors.FetchError{URL: pageURL, Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		s.deps.Logger.Warn("Unexpected status fetching page", map[string]interface{}{
			"url":    pageURL,
			"status": resp.StatusCode(),
		})
		return nil, &coreerrors.FetchError{URL: pageURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.config.MaxBodyBytes))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: pageURL, StatusCode: resp.StatusCode(), Cause: err}
	}

	if final := resp.FinalURL(); final != "" {
		if u, err := urlresolve.Parse(final); err == nil {
			base = u
		}
	}

	feeds, err := s.detector.Detect(base, string(body))
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Discovered feeds", map[string]interface{}{
		"url":      pageURL,
		"base_url": base.String(),
		"feeds":    len(feeds),
	})

	return &domain.DiscoveryResult{
		URL:     pageURL,
		BaseURL: base.String(),
		Feeds:   feeds,
	}, nil
}

// DiscoverBatch runs Discover for each URL with bounded concurrency. A failure
// on one URL is recorded in its result and never stops the others.
func (s *Service) DiscoverBatch(ctx context.Context, pageURLs []string) []domain.BatchResult {
	results := make([]domain.BatchResult, len(pageURLs))

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)

	for i, pageURL := range pageURLs {
		i, pageURL := i, pageURL
		g.Go(func() error {
			results[i].URL = pageURL
			result, err := s.Discover(ctx, pageURL)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Feeds = result.Feeds
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func parsePageURL(pageURL string) (*url.URL, error) {
	base, err := urlresolve.Parse(pageURL)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "must be an absolute URL: " + err.Error()}
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "scheme must be http or https"}
	}
	return base, nil
}
