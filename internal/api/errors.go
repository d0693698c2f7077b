package api

import (
	"errors"
	"net/http"

	"github.com/eduforge/worksheet-api/internal/domain"
	"github.com/eduforge/worksheet-api/internal/generation"
)

// Stable error codes returned in the error envelope.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeServiceExhausted     = "SERVICE_EXHAUSTED"
	CodeIncompleteGeneration = "INCOMPLETE_GENERATION"
	CodeRequestCancelled     = "REQUEST_CANCELLED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This
// keeps internal error types from leaking to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, generation.ErrServiceExhausted):
		return http.StatusServiceUnavailable
	case errors.Is(err, generation.ErrIncompleteGeneration):
		return http.StatusBadGateway
	case errors.Is(err, generation.ErrCancelled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapErrorToCode returns the stable error code for the error envelope.
func MapErrorToCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return CodeValidationError
	case errors.Is(err, generation.ErrServiceExhausted):
		return CodeServiceExhausted
	case errors.Is(err, generation.ErrIncompleteGeneration):
		return CodeIncompleteGeneration
	case errors.Is(err, generation.ErrCancelled):
		return CodeRequestCancelled
	default:
		return CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, human-readable message for the
// error. Validation errors carry their own safe text; everything else gets
// a fixed message so internal details never surface as the explanation.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, domain.ErrValidation):
		return err.Error()
	case errors.Is(err, generation.ErrServiceExhausted):
		return "The worksheet service is temporarily unavailable. Please try again later."
	case errors.Is(err, generation.ErrIncompleteGeneration):
		return "The generated worksheet was incomplete. Please try again, ideally with a more specific topic."
	case errors.Is(err, generation.ErrCancelled):
		return "The request was cancelled before the worksheet was ready."
	default:
		return "An unexpected error occurred"
	}
}
