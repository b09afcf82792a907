package insight

import (
	"context"

	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// CRMClient is the slice of the HubSpot client the aggregator needs.
type CRMClient interface {
	GetContact(ctx context.Context, contactID string) (*hubspot.Object, error)
	DealsForContact(ctx context.Context, contactID string) ([]hubspot.Object, error)
	StageLabels(ctx context.Context) (map[string]string, error)
	DealLineItemQuantity(ctx context.Context, dealID string) (int, error)
}

// AIClient generates a text completion for an assembled prompt.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
