package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const dealListLimit = "50"

var dealProperties = []string{"dealname", "amount", "dealstage", "pipeline", "closedate", "createdate"}

// ListDeals fetches the first page of deals with a fixed projection.
func (c *Client) ListDeals(ctx context.Context) (*ObjectList, error) {
	query := url.Values{}
	query.Set("limit", dealListLimit)
	query.Set("properties", strings.Join(dealProperties, ","))

	body, err := c.sendRequest(ctx, "GET", "/crm/v3/objects/deals", query, nil)
	if err != nil {
		return nil, err
	}

	var list ObjectList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deal list: %w", err)
	}

	return &list, nil
}

// CreateDeal creates a deal from a property bag. When contactID is set the
// deal is associated to that contact with the built-in deal→contact
// relation; the contact's existence is not verified first, any upstream
// rejection passes through.
func (c *Client) CreateDeal(ctx context.Context, properties map[string]string, contactID string) (*Object, error) {
	request := createObjectRequest{Properties: properties}

	if contactID != "" {
		request.Associations = []objectAssociation{
			{
				To: associationTarget{ID: contactID},
				Types: []associationType{
					{
						AssociationCategory: "HUBSPOT_DEFINED",
						AssociationTypeID:   dealToContactAssociationTypeID,
					},
				},
			},
		}
	}

	body, err := c.sendRequest(ctx, "POST", "/crm/v3/objects/deals", nil, request)
	if err != nil {
		return nil, err
	}

	var deal Object
	if err := json.Unmarshal(body, &deal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created deal: %w", err)
	}

	return &deal, nil
}

// DealsForContact resolves the contact's deal association ids and batch
// reads the full records. No associations short-circuits to an empty slice
// without issuing the batch read.
func (c *Client) DealsForContact(ctx context.Context, contactID string) ([]Object, error) {
	ids, err := c.AssociatedObjectIDs(ctx, "contacts", contactID, "deals")
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []Object{}, nil
	}

	return c.BatchRead(ctx, "deals", ids, dealProperties)
}
