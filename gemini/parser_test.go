package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightFencedJSONBlock(t *testing.T) {
	raw := "Here is the analysis you asked for:\n\n```json\n{\n  \"likelihoodToUpgrade\": \"High\",\n  \"riskOfChurn\": \"Low\",\n  \"suggestedAction\": \"Offer the Smart Schedule AI onboarding session\",\n  \"justification\": \"Active subscriber with recent hardware purchase.\"\n}\n```\n\nLet me know if you need anything else."

	result := ParseInsight(raw)

	require.True(t, result.Parsed)
	assert.Equal(t, "High", result.Insight.LikelihoodToUpgrade)
	assert.Equal(t, "Low", result.Insight.RiskOfChurn)
	assert.Equal(t, "Offer the Smart Schedule AI onboarding session", result.Insight.SuggestedAction)
}

func TestParseInsightBareFence(t *testing.T) {
	raw := "```\n{\"likelihoodToUpgrade\":\"Medium\",\"riskOfChurn\":\"Medium\",\"suggestedAction\":\"Check in\",\"justification\":\"Trial ended recently.\"}\n```"

	result := ParseInsight(raw)

	require.True(t, result.Parsed)
	assert.Equal(t, "Medium", result.Insight.LikelihoodToUpgrade)
}

func TestParseInsightRawJSON(t *testing.T) {
	raw := `{"likelihoodToUpgrade":"Low","riskOfChurn":"High","suggestedAction":"Send a win-back offer for Energy Insights AI","justification":"Subscription was cancelled."}`

	result := ParseInsight(raw)

	require.True(t, result.Parsed)
	assert.Equal(t, "High", result.Insight.RiskOfChurn)
	assert.Equal(t, "Subscription was cancelled.", result.Insight.Justification)
}

func TestParseInsightFallbackPlaceholder(t *testing.T) {
	raw := "I'm sorry, I can't produce JSON right now, but this customer looks quite unhappy overall."

	result := ParseInsight(raw)

	require.False(t, result.Parsed)
	assert.Equal(t, "Unknown", result.Insight.LikelihoodToUpgrade)
	assert.Equal(t, "Unknown", result.Insight.RiskOfChurn)
	assert.Equal(t, raw+"...", result.Insight.Justification)
}

func TestParseInsightFallbackTruncatesLongText(t *testing.T) {
	raw := strings.Repeat("x", 500)

	result := ParseInsight(raw)

	require.False(t, result.Parsed)
	assert.Equal(t, strings.Repeat("x", 200)+"...", result.Insight.Justification)
}

func TestParseInsightMalformedFencedBlockFallsThrough(t *testing.T) {
	// Broken JSON inside the fence, valid JSON nowhere else.
	raw := "```json\n{\"likelihoodToUpgrade\": \"High\",\n```"

	result := ParseInsight(raw)

	require.False(t, result.Parsed)
	assert.Equal(t, "Unknown", result.Insight.RiskOfChurn)
}
