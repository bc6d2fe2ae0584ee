// ABOUTME: Main client for the FeedFinder library providing feed URL detection
// ABOUTME: Offers detection over supplied HTML and fetch-then-detect without HTTP server dependencies

package feedfinder

import (
	"context"

	"feedfinder/core/detect"
	"feedfinder/core/discovery"
	"feedfinder/core/interfaces"
	httpInfra "feedfinder/infrastructure/http/standard"
)

// Client is the main entry point for the FeedFinder library
type Client struct {
	detector *detect.Detector
	service  *discovery.Service
	config   Config
}

// BatchResult is the outcome for one URL of DiscoverAll
type BatchResult struct {
	URL   string
	Feeds []Feed
	Err   error
}

// NewClient creates a new FeedFinder client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.Logger == nil {
		config.Logger = QuietLogger()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = httpInfra.NewStandardHTTPClient(config.Timeout)
	}

	detector := detect.New(
		detect.WithErrorPolicy(config.ErrorPolicy),
		detect.WithLogger(config.Logger),
	)
	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	return &Client{
		detector: detector,
		service: discovery.NewService(deps, detector, discovery.Config{
			MaxBodyBytes: config.MaxBodyBytes,
			Concurrency:  config.Concurrency,
		}),
		config: config,
	}, nil
}

// Detect finds candidate feeds in html, resolving references against baseURL.
// An empty result means no strategy matched.
func (c *Client) Detect(baseURL, html string) ([]Feed, error) {
	feeds, err := c.detector.DetectString(baseURL, html)
	if err != nil {
		return nil, wrapError(err)
	}
	return fromDomain(feeds), nil
}

// Discover fetches pageURL and detects feeds in the response
func (c *Client) Discover(ctx context.Context, pageURL string) (*Result, error) {
	result, err := c.service.Discover(ctx, pageURL)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Result{
		URL:     result.URL,
		BaseURL: result.BaseURL,
		Feeds:   fromDomain(result.Feeds),
	}, nil
}

// DiscoverAll runs Discover for every URL concurrently. Results keep input
// order; a failure on one URL is reported in its own result.
func (c *Client) DiscoverAll(ctx context.Context, pageURLs []string) []BatchResult {
	batch := c.service.DiscoverBatch(ctx, pageURLs)

	results := make([]BatchResult, len(batch))
	for i, r := range batch {
		results[i] = BatchResult{
			URL:   r.URL,
			Feeds: fromDomain(r.Feeds),
			Err:   wrapError(r.Err),
		}
	}
	return results
}

// Detect runs fail-fast detection with no client configuration
func Detect(baseURL, html string) ([]Feed, error) {
	feeds, err := detect.DetectString(baseURL, html)
	if err != nil {
		return nil, wrapError(err)
	}
	return fromDomain(feeds), nil
}
