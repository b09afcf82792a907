package hubspot

import (
	"context"
	"strconv"
)

var lineItemProperties = []string{"quantity", "name"}

// DealLineItemQuantity sums the quantities of all line items attached to a
// deal. A deal without line items counts as a single unit; older hardware
// orders were created before line items were filled in. Fetch failures are
// returned to the caller, which swallows them as zero.
func (c *Client) DealLineItemQuantity(ctx context.Context, dealID string) (int, error) {
	ids, err := c.AssociatedObjectIDs(ctx, "deals", dealID, "line_items")
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 1, nil
	}

	items, err := c.BatchRead(ctx, "line_items", ids, lineItemProperties)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, item := range items {
		if quantity, parseErr := strconv.ParseFloat(item.Properties["quantity"], 64); parseErr == nil {
			total += int(quantity)
		}
	}

	return total, nil
}
