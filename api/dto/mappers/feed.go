// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"feedfinder/api/dto/responses"
	"feedfinder/core/domain"
)

// ToFeedResponse converts a domain Feed to a FeedResponse DTO
func ToFeedResponse(feed domain.Feed) responses.FeedResponse {
	return responses.FeedResponse{
		URL:  feed.URL(),
		Kind: feed.Kind().String(),
	}
}

// ToFeedResponses converts feeds, never returning nil so JSON renders []
func ToFeedResponses(feeds []domain.Feed) []responses.FeedResponse {
	out := make([]responses.FeedResponse, 0, len(feeds))
	for _, feed := range feeds {
		out = append(out, ToFeedResponse(feed))
	}
	return out
}

// ToDetectResponse converts a discovery result to a DetectResponse DTO
func ToDetectResponse(result *domain.DiscoveryResult) *responses.DetectResponse {
	if result == nil {
		return nil
	}

	return &responses.DetectResponse{
		URL:     result.URL,
		BaseURL: result.BaseURL,
		Feeds:   ToFeedResponses(result.Feeds),
	}
}

// ToDiscoverResult converts one batch entry to a DiscoverResult DTO
func ToDiscoverResult(result domain.BatchResult) responses.DiscoverResult {
	if result.Err != nil {
		return responses.DiscoverResult{
			URL:    result.URL,
			Status: responses.StatusError,
			Feeds:  []responses.FeedResponse{},
			Error:  result.Err.Error(),
		}
	}

	return responses.DiscoverResult{
		URL:    result.URL,
		Status: responses.StatusOK,
		Feeds:  ToFeedResponses(result.Feeds),
	}
}
