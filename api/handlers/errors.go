// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"feedfinder/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// a page reference that cannot be resolved makes the input unprocessable
	if errors.IsURLResolution(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	if errors.IsFetch(err) {
		return huma.Error502BadGateway("Failed to fetch page", err)
	}

	// QueryError lands here: a bad selector is our bug, not the caller's
	return huma.Error500InternalServerError("Internal server error", err)
}
