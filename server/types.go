package server

import (
	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// ErrorResponse is the JSON error envelope for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code plus, for upstream failures,
// the raw upstream body under Details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type CreateContactRequest struct {
	Properties map[string]string `json:"properties"`
}

type CreateDealRequest struct {
	DealProperties map[string]string `json:"dealProperties"`
	ContactID      string            `json:"contactId"`
}

// DealWithQuantity is a hardware deal annotated with its summed line-item
// quantity.
type DealWithQuantity struct {
	hubspot.Object
	Quantity int `json:"quantity"`
}

type DealListResponse struct {
	Results []hubspot.Object `json:"results"`
}

type ThermostatDealListResponse struct {
	Results []DealWithQuantity `json:"results"`
}

type SubscriptionListResponse struct {
	Results []hubspot.Object `json:"results"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
