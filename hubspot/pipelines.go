package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListDealPipelines fetches every deal pipeline with its stage
// definitions. Fetched fresh per request; stage labels drive the health
// classification so a stale copy could misclassify renamed stages.
func (c *Client) ListDealPipelines(ctx context.Context) ([]Pipeline, error) {
	body, err := c.sendRequest(ctx, "GET", "/crm/v3/pipelines/deals", nil, nil)
	if err != nil {
		return nil, err
	}

	var list PipelineList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pipeline list: %w", err)
	}

	return list.Results, nil
}

// StageLabels flattens all pipelines into a stage id → label map.
func (c *Client) StageLabels(ctx context.Context) (map[string]string, error) {
	pipelines, err := c.ListDealPipelines(ctx)
	if err != nil {
		return nil, err
	}

	labels := make(map[string]string)
	for _, pipeline := range pipelines {
		for _, stage := range pipeline.Stages {
			labels[stage.ID] = stage.Label
		}
	}

	return labels, nil
}
