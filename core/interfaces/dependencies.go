// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the discovery service

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient fetches pages for remote discovery
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
