package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const contactListLimit = "50"

var contactListProperties = "firstname,lastname,email,phone,createdate"

// contactCoreProperties is the narrower projection the health-insight
// aggregation needs.
var contactCoreProperties = "firstname,lastname,email,createdate"

// ListContacts fetches the first page of contacts with a fixed projection.
// The dashboard only ever renders one page.
func (c *Client) ListContacts(ctx context.Context) (*ObjectList, error) {
	query := url.Values{}
	query.Set("limit", contactListLimit)
	query.Set("properties", contactListProperties)

	body, err := c.sendRequest(ctx, "GET", "/crm/v3/objects/contacts", query, nil)
	if err != nil {
		return nil, err
	}

	var list ObjectList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact list: %w", err)
	}

	return &list, nil
}

// CreateContact creates a contact from a caller-supplied property bag. A
// duplicate-email rejection from HubSpot comes back as an *APIError that
// IsDuplicateContact recognizes; the caller decides how to surface it.
func (c *Client) CreateContact(ctx context.Context, properties map[string]string) (*Object, error) {
	body, err := c.sendRequest(ctx, "POST", "/crm/v3/objects/contacts", nil, createObjectRequest{
		Properties: properties,
	})
	if err != nil {
		return nil, err
	}

	var contact Object
	if err := json.Unmarshal(body, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created contact: %w", err)
	}

	return &contact, nil
}

// GetContact fetches one contact with the core properties the insight
// summary uses.
func (c *Client) GetContact(ctx context.Context, contactID string) (*Object, error) {
	query := url.Values{}
	query.Set("properties", contactCoreProperties)

	body, err := c.sendRequest(ctx, "GET", "/crm/v3/objects/contacts/"+contactID, query, nil)
	if err != nil {
		return nil, err
	}

	var contact Object
	if err := json.Unmarshal(body, &contact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contact: %w", err)
	}

	return &contact, nil
}
