package handlers

import (
	"fmt"
	"testing"

	"moodboard-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "history entry", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "history entry not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "mood", Message: "too short"},
			expectedStatus: 400,
			expectedInMsg:  "mood",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error", API: "replicate"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited", API: "replicate"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 400 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 400, Message: "bad request", API: "replicate"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error", API: "image-host"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "history entry", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "history entry not found",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("context: %w", &errors.ValidationError{Field: "layout", Message: "required"}),
			expectedStatus: 400,
			expectedInMsg:  "layout",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_WrappedExternalAPIError_FallsThrough(t *testing.T) {
	// The status mapping only applies to unwrapped API errors; wrapped ones
	// get the generic 500.
	err := fmt.Errorf("wrapped: %w", &errors.ExternalAPIError{StatusCode: 500, Message: "boom", API: "replicate"})

	result := toHumaError(err)

	humaErr, ok := result.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, 500, humaErr.Status)
}
