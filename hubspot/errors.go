package hubspot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError carries a non-2xx upstream response so handlers can pass the
// original status and body through to the caller.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hubspot API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hubspot API error (%d)", e.StatusCode)
}

// errorBody is the HubSpot error envelope. Nested errors carry their own
// messages which also need scanning for duplicate detection.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Category      string `json:"category"`
	CorrelationID string `json:"correlationId"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
	}

	return apiErr
}

var duplicateMarkers = []string{"already exists", "duplicate", "unique constraint"}

// IsDuplicateContact reports whether a create-contact failure should be
// surfaced as a duplicate-email conflict. HubSpot is not consistent about
// the status code it uses for this, so both the code and the error text
// (top-level and nested) are checked.
func IsDuplicateContact(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	if apiErr.StatusCode == http.StatusConflict || apiErr.StatusCode == http.StatusBadRequest {
		return true
	}

	var parsed errorBody
	if jsonErr := json.Unmarshal([]byte(apiErr.Body), &parsed); jsonErr != nil {
		return containsDuplicateMarker(apiErr.Body)
	}

	if containsDuplicateMarker(parsed.Message) {
		return true
	}
	for _, nested := range parsed.Errors {
		if containsDuplicateMarker(nested.Message) {
			return true
		}
	}

	return false
}

func containsDuplicateMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range duplicateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
