package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
)

// dealToContactAssociationTypeID is HubSpot's built-in deal→contact
// association type.
const dealToContactAssociationTypeID = 3

// AssociatedObjectIDs returns the ids of all objects of toObjectType
// associated with the given record. An empty slice means no associations
// exist; callers short-circuit without a batch read in that case.
func (c *Client) AssociatedObjectIDs(ctx context.Context, fromObjectType, objectID, toObjectType string) ([]string, error) {
	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s", fromObjectType, objectID, toObjectType)

	body, err := c.sendRequest(ctx, "GET", path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list associationList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal association list: %w", err)
	}

	ids := make([]string, 0, len(list.Results))
	for _, result := range list.Results {
		ids = append(ids, result.ToObjectID.String())
	}

	return ids, nil
}

// BatchRead fetches full records for a set of ids of one object type with
// the given property projection.
func (c *Client) BatchRead(ctx context.Context, objectType string, ids, properties []string) ([]Object, error) {
	inputs := make([]batchReadInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, batchReadInput{ID: id})
	}

	path := fmt.Sprintf("/crm/v3/objects/%s/batch/read", objectType)

	body, err := c.sendRequest(ctx, "POST", path, nil, batchReadRequest{
		Inputs:     inputs,
		Properties: properties,
	})
	if err != nil {
		return nil, err
	}

	var list ObjectList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch read response: %w", err)
	}

	return list.Results, nil
}
