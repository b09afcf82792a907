package server

import (
	"context"

	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

// CRMClient defines the HubSpot client methods the handlers use.
type CRMClient interface {
	ListContacts(ctx context.Context) (*hubspot.ObjectList, error)
	CreateContact(ctx context.Context, properties map[string]string) (*hubspot.Object, error)
	ListDeals(ctx context.Context) (*hubspot.ObjectList, error)
	CreateDeal(ctx context.Context, properties map[string]string, contactID string) (*hubspot.Object, error)
	ListDealPipelines(ctx context.Context) ([]hubspot.Pipeline, error)
	DealsForContact(ctx context.Context, contactID string) ([]hubspot.Object, error)
	SubscriptionsForContact(ctx context.Context, objectType, contactID string) ([]hubspot.Object, error)
}
