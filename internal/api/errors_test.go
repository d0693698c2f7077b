package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduforge/worksheet-api/internal/domain"
	"github.com/eduforge/worksheet-api/internal/generation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: topic is required", domain.ErrValidation), http.StatusBadRequest},
		{"exhausted", generation.ErrServiceExhausted, http.StatusServiceUnavailable},
		{"wrapped exhausted", fmt.Errorf("%w after 3 attempts", generation.ErrServiceExhausted), http.StatusServiceUnavailable},
		{"incomplete", generation.ErrIncompleteGeneration, http.StatusBadGateway},
		{"cancelled", generation.ErrCancelled, http.StatusRequestTimeout},
		{"unknown", assert.AnError, http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", fmt.Errorf("%w: grade is required", domain.ErrValidation), CodeValidationError},
		{"exhausted", generation.ErrServiceExhausted, CodeServiceExhausted},
		{"incomplete", generation.ErrIncompleteGeneration, CodeIncompleteGeneration},
		{"cancelled", generation.ErrCancelled, CodeRequestCancelled},
		{"unknown", assert.AnError, CodeInternalError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("validation errors keep their text", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyTopic)
		assert.Equal(t, err.Error(), GetSafeErrorMessage(err))
	})

	t.Run("other errors get a fixed message", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("%w after 3 attempts: connection refused to 10.0.0.5", generation.ErrServiceExhausted)
		msg := GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.0.0.5")
		assert.Contains(t, msg, "temporarily unavailable")
	})

	t.Run("unknown error text is hidden", func(t *testing.T) {
		t.Parallel()
		msg := GetSafeErrorMessage(fmt.Errorf("panic in generator: index out of range"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}
