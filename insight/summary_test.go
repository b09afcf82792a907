package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummaryCancelledContact(t *testing.T) {
	s := HealthSnapshot{
		FirstName:      "Dana",
		LastName:       "Reyes",
		Email:          "dana@example.com",
		CustomerSince:  "2023-01-10T09:00:00Z",
		TrialDealCount: 1,
		Stages:         StageCounts{Cancelled: 1},
		GeneratedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	summary := RenderSummary(s)

	assert.Contains(t, summary, "SUBSCRIPTION CANCELLED")
	assert.Contains(t, summary, "CHURN RISK: HIGH")
	assert.Contains(t, summary, "no purchase")
	assert.NotContains(t, summary, "ACTIVE SUBSCRIBER")
}

func TestRenderSummaryActiveSubscriber(t *testing.T) {
	s := HealthSnapshot{
		FirstName:         "Dana",
		HardwareDealCount: 1,
		HardwareUnits:     3,
		HardwareTotal:     747.00,
		Stages:            StageCounts{Converted: 1},
		LastPurchase:      time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC),
		GeneratedAt:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	summary := RenderSummary(s)

	assert.Contains(t, summary, "ACTIVE SUBSCRIBER")
	assert.Contains(t, summary, "Thermostat units owned: 3")
	assert.Contains(t, summary, "$747.00")
	assert.Contains(t, summary, "2024-05-25 (7 days ago)")
	assert.NotContains(t, summary, "SUBSCRIPTION CANCELLED")
}

func TestRenderSummaryNoHistory(t *testing.T) {
	summary := RenderSummary(HealthSnapshot{GeneratedAt: time.Now()})

	assert.Contains(t, summary, "Customer: Unknown  (unknown)")
	assert.Contains(t, summary, "NO SUBSCRIPTION HISTORY")
	assert.Contains(t, summary, "no trial")
}

func TestBuildPromptEmbedsSummaryAndSchema(t *testing.T) {
	prompt := BuildPrompt("CUSTOMER HEALTH SUMMARY\n- Cancelled: 1")

	assert.Contains(t, prompt, "CUSTOMER HEALTH SUMMARY")
	assert.Contains(t, prompt, "likelihoodToUpgrade")
	assert.Contains(t, prompt, "riskOfChurn")
	assert.Contains(t, prompt, "suggestedAction")
	assert.Contains(t, prompt, "justification")
	assert.Contains(t, prompt, "Smart Schedule AI")
}
