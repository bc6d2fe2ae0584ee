// ABOUTME: Discovery handlers for detecting feed URLs in web pages
// ABOUTME: Detects in caller-supplied HTML or fetches pages server-side when enabled

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"feedfinder/api/dto/mappers"
	"feedfinder/api/dto/requests"
	"feedfinder/api/dto/responses"
	"feedfinder/core/interfaces"
	"feedfinder/pkg/featureflags"
)

// DiscoverHandler handles feed detection and discovery
type DiscoverHandler struct {
	service interfaces.DiscoveryService
	flags   featureflags.Manager
}

// NewDiscoverHandler creates a new discover handler. A nil flag manager
// enables every endpoint.
func NewDiscoverHandler(service interfaces.DiscoveryService, flags featureflags.Manager) *DiscoverHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(featureflags.Defaults)
	}
	return &DiscoverHandler{
		service: service,
		flags:   flags,
	}
}

// RegisterRoutes registers discovery routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "detectFeeds",
		Method:      http.MethodPost,
		Path:        "/detect",
		Summary:     "Detect feeds in HTML",
		Description: "Finds candidate RSS/Atom/JSON feed URLs in the supplied HTML without fetching anything",
		Tags:        []string{"Discovery"},
	}, h.DetectFeeds)

	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover feeds from websites",
		Description: "Fetches each page and finds candidate feed URLs. Candidates are not verified.",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Meta"},
	}, h.Health)
}

// DetectFeedsInput defines the input for HTML detection
type DetectFeedsInput struct {
	Body requests.DetectRequest
}

// DetectFeedsOutput defines the output for HTML detection
type DetectFeedsOutput struct {
	Body responses.DetectResponse
}

// DetectFeeds handles the POST /detect endpoint
func (h *DiscoverHandler) DetectFeeds(ctx context.Context, input *DetectFeedsInput) (*DetectFeedsOutput, error) {
	result, err := h.service.DetectHTML(input.Body.URL, input.Body.HTML)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DetectFeedsOutput{Body: *mappers.ToDetectResponse(result)}, nil
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body requests.DiscoverRequest
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body responses.DiscoverResponse
}

// DiscoverFeeds handles the POST /discover endpoint
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.RemoteFetchEnabled) {
		return nil, huma.Error403Forbidden("Remote discovery is disabled")
	}
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}
	if len(input.Body.URLs) > requests.MaxDiscoverURLs {
		return nil, huma.Error400BadRequest("Too many URLs")
	}

	batch := h.service.DiscoverBatch(ctx, input.Body.URLs)

	output := &DiscoverFeedsOutput{}
	output.Body.Results = make([]responses.DiscoverResult, 0, len(batch))
	for _, result := range batch {
		output.Body.Results = append(output.Body.Results, mappers.ToDiscoverResult(result))
	}
	return output, nil
}

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *DiscoverHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	flags := make(map[string]bool)
	for flag, enabled := range h.flags.GetAllFlags() {
		flags[string(flag)] = enabled
	}

	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.Flags = flags
	return output, nil
}
