package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NextMind-AI/crm-admin-go/gemini"
	"github.com/NextMind-AI/crm-admin-go/hubspot"
	"github.com/NextMind-AI/crm-admin-go/insight"
)

func TestContactInsightCancelledScenario(t *testing.T) {
	crm := &mockCRMClient{
		contact: &hubspot.Object{
			ID:         "42",
			Properties: map[string]string{"firstname": "Dana", "lastname": "Reyes", "email": "dana@example.com"},
		},
		contactDeals: []hubspot.Object{
			{ID: "t1", Properties: map[string]string{
				"pipeline":   "default",
				"dealstage":  "s-cancelled",
				"amount":     "9.99",
				"createdate": "2024-01-01T00:00:00Z",
			}},
		},
		stageLabels: map[string]string{"s-cancelled": "Cancelled"},
	}
	ai := &mockAIClient{
		response: "```json\n{\"likelihoodToUpgrade\":\"Low\",\"riskOfChurn\":\"High\",\"suggestedAction\":\"Send a win-back offer for Energy Insights AI\",\"justification\":\"Cancelled subscription.\"}\n```",
	}
	s := newTestServer(crm, ai)

	resp, body := doRequest(t, s, "POST", "/api/contacts/42/ai-insight", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result insight.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Parsed)
	assert.Equal(t, "High", result.Insight.RiskOfChurn)
	assert.Equal(t, ai.response, result.RawResponse)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Cancelled")
	assert.Contains(t, ai.prompts[0], "SUBSCRIPTION CANCELLED")
	assert.Contains(t, ai.prompts[0], "CHURN RISK: HIGH")
}

func TestContactInsightUnparseableResponseStillSucceeds(t *testing.T) {
	crm := &mockCRMClient{
		contact:     &hubspot.Object{ID: "42", Properties: map[string]string{"firstname": "Dana"}},
		stageLabels: map[string]string{},
	}
	ai := &mockAIClient{response: "The customer seems fine to me."}
	s := newTestServer(crm, ai)

	resp, body := doRequest(t, s, "POST", "/api/contacts/42/ai-insight", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result insight.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Parsed)
	assert.Equal(t, "Unknown", result.Insight.LikelihoodToUpgrade)
	assert.Equal(t, "The customer seems fine to me....", result.Insight.Justification)
	assert.Equal(t, "The customer seems fine to me.", result.RawResponse)
}

func TestContactInsightAIFailurePassesThrough(t *testing.T) {
	crm := &mockCRMClient{stageLabels: map[string]string{}}
	ai := &mockAIClient{err: &gemini.APIError{StatusCode: 503, Body: `{"message":"model overloaded"}`}}
	s := newTestServer(crm, ai)

	resp, body := doRequest(t, s, "POST", "/api/contacts/42/ai-insight", "")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "model overloaded")
}
