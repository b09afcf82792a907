package hubspot

import (
	"context"
)

var subscriptionProperties = []string{"subscription_name", "status", "monthly_price", "start_date"}

// SubscriptionsForContact fetches the subscription custom-object records
// associated with a contact. objectType is the portal-specific custom
// object type id (configured, not discovered). Same two-hop shape as
// DealsForContact with the same empty short-circuit.
func (c *Client) SubscriptionsForContact(ctx context.Context, objectType, contactID string) ([]Object, error) {
	ids, err := c.AssociatedObjectIDs(ctx, "contacts", contactID, objectType)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []Object{}, nil
	}

	return c.BatchRead(ctx, objectType, ids, subscriptionProperties)
}
