// ABOUTME: Request DTOs for feed detection and discovery endpoints
// ABOUTME: Huma validates shape and bounds from the struct tags

package requests

// MaxDiscoverURLs bounds a single discovery batch
const MaxDiscoverURLs = 50

// DetectRequest carries markup the caller already fetched
type DetectRequest struct {
	// URL is the page's own URL, used to resolve relative references
	URL string `json:"url" minLength:"1" doc:"Absolute URL of the page the HTML came from"`

	// HTML is the page markup; malformed markup is accepted
	HTML string `json:"html" doc:"Page HTML"`
}

// DiscoverRequest lists pages for the server to fetch and scan
type DiscoverRequest struct {
	// URLs is the list of page URLs to fetch
	URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"Page URLs to fetch and scan for feeds"`
}
