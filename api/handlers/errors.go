// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"telescout-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Parse diagnostics are never included in the response.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific error types
	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExtractionParse(err) {
		return huma.Error502BadGateway("AI response could not be processed")
	}

	var remoteErr *errors.RemoteCallError
	if stderrors.As(err, &remoteErr) {
		switch {
		case remoteErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("AI service error", err)
		case remoteErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by AI service")
		default:
			return huma.Error502BadGateway("AI service request failed", err)
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
