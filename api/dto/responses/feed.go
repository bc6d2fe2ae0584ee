// ABOUTME: Response DTOs for feed detection and discovery endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// Discovery statuses reported per URL
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// FeedResponse represents one candidate feed
type FeedResponse struct {
	URL  string `json:"url" doc:"Absolute feed URL"`
	Kind string `json:"kind" enum:"rss,atom,json,link,guess" doc:"How the candidate was found"`
}

// DetectResponse is the result of detection over caller-supplied HTML
type DetectResponse struct {
	URL     string         `json:"url" doc:"Page URL as given"`
	BaseURL string         `json:"base_url" doc:"URL relative references were resolved against"`
	Feeds   []FeedResponse `json:"feeds" doc:"Candidate feeds in discovery order"`
}

// DiscoverResult is the outcome for one fetched page
type DiscoverResult struct {
	URL    string         `json:"url" doc:"Page URL that was fetched"`
	Status string         `json:"status" enum:"ok,error" doc:"Discovery status"`
	Feeds  []FeedResponse `json:"feeds" doc:"Candidate feeds in discovery order"`
	Error  string         `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// DiscoverResponse holds results in request order
type DiscoverResponse struct {
	Results []DiscoverResult `json:"results" doc:"Discovery results for each URL"`
}

// HealthResponse reports liveness and active feature flags
type HealthResponse struct {
	Status string          `json:"status" doc:"Always ok when the server is up"`
	Flags  map[string]bool `json:"flags,omitempty" doc:"Feature flag states"`
}
