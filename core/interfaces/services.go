// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the discovery contract used by the API handlers and the CLI

package interfaces

import (
	"context"

	"feedfinder/core/domain"
)

// DiscoveryService finds candidate feeds for web pages
type DiscoveryService interface {
	// DetectHTML runs detection over already-fetched markup
	DetectHTML(pageURL, html string) (*domain.DiscoveryResult, error)

	// Discover fetches pageURL and runs detection over the response
	Discover(ctx context.Context, pageURL string) (*domain.DiscoveryResult, error)

	// DiscoverBatch runs Discover for every URL. Results keep input order and
	// carry their own errors.
	DiscoverBatch(ctx context.Context, pageURLs []string) []domain.BatchResult
}
