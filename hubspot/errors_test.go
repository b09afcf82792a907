package hubspot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateContact(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		duplicate bool
	}{
		{
			name:      "409 conflict",
			err:       &APIError{StatusCode: 409, Body: `{"message":"Contact already exists"}`},
			duplicate: true,
		},
		{
			name:      "400 bad request",
			err:       &APIError{StatusCode: 400, Body: `{"message":"Property values were not valid"}`},
			duplicate: true,
		},
		{
			name:      "500 with already exists in message",
			err:       &APIError{StatusCode: 500, Body: `{"message":"Contact ALREADY EXISTS with this email"}`},
			duplicate: true,
		},
		{
			name:      "500 with duplicate in nested error",
			err:       &APIError{StatusCode: 500, Body: `{"message":"Validation failed","errors":[{"message":"duplicate value for email"}]}`},
			duplicate: true,
		},
		{
			name:      "500 with unique constraint in nested error",
			err:       &APIError{StatusCode: 500, Body: `{"message":"Internal error","errors":[{"message":"Unique Constraint violated on email"}]}`},
			duplicate: true,
		},
		{
			name:      "non-JSON body containing marker",
			err:       &APIError{StatusCode: 503, Body: "record already exists"},
			duplicate: true,
		},
		{
			name:      "unrelated upstream failure",
			err:       &APIError{StatusCode: 502, Body: `{"message":"Bad gateway"}`},
			duplicate: false,
		},
		{
			name:      "rate limit",
			err:       &APIError{StatusCode: 429, Body: `{"message":"You have reached your request limit"}`},
			duplicate: false,
		},
		{
			name:      "plain error",
			err:       errors.New("connection refused"),
			duplicate: false,
		},
		{
			name:      "wrapped api error",
			err:       fmt.Errorf("create contact: %w", &APIError{StatusCode: 409, Body: "{}"}),
			duplicate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duplicate, IsDuplicateContact(tt.err))
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := newAPIError(409, []byte(`{"status":"error","message":"Contact already exists","category":"CONFLICT"}`))
	assert.Equal(t, 409, err.StatusCode)
	assert.Equal(t, "Contact already exists", err.Message)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "Contact already exists")
}
