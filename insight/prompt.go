package insight

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/NextMind-AI/crm-admin-go/gemini"
)

// insightSchemaJSON is the JSON schema of the response object, rendered
// once and embedded in every prompt so the model sees the exact shape it
// must return.
var insightSchemaJSON = renderInsightSchema()

func renderInsightSchema() string {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&gemini.Insight{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

const promptTemplate = `You are a customer success analyst for NextMind, a smart thermostat company with an AI-powered comfort subscription.

Analyze the customer health summary below and respond with a single JSON object, and nothing else, matching this schema:

%s

Rules:
- likelihoodToUpgrade and riskOfChurn are "Low", "Medium" or "High", optionally followed by a short qualifier.
- suggestedAction must name one specific NextMind AI feature: Smart Schedule AI, Comfort Tuning AI, or Energy Insights AI.
- justification is one or two sentences grounded only in facts from the summary.

Examples of good responses:

{"likelihoodToUpgrade": "High", "riskOfChurn": "Low", "suggestedAction": "Invite them to enable Smart Schedule AI on their second thermostat", "justification": "Active subscriber with multiple thermostat units and a recent purchase."}

{"likelihoodToUpgrade": "Low", "riskOfChurn": "High", "suggestedAction": "Send a win-back offer highlighting Energy Insights AI savings reports", "justification": "The customer cancelled their subscription and has not purchased hardware in over a year."}

Customer health summary:

%s`

// BuildPrompt embeds the rendered summary in the instruction template.
func BuildPrompt(summary string) string {
	return fmt.Sprintf(promptTemplate, insightSchemaJSON, summary)
}
