// ABOUTME: Discovery result models returned by the discovery service
// ABOUTME: Carries the detected feeds together with the page URL they were resolved against

package domain

// DiscoveryResult holds the candidates found for one page
type DiscoveryResult struct {
	// URL is the page URL as requested
	URL string

	// BaseURL is the URL relative references were resolved against.
	// For fetched pages this is the final URL after redirects.
	BaseURL string

	// Feeds are the candidates in strategy order. Empty means no feed found.
	Feeds []Feed
}

// BatchResult is one entry of a batch discovery
type BatchResult struct {
	URL   string
	Feeds []Feed
	Err   error
}
