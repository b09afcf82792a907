package gemini

import (
	"encoding/json"
	"strings"
)

// ParseResult is the outcome of parsing model output. Parsed is false when
// the text could not be interpreted and the placeholder insight was used
// instead.
type ParseResult struct {
	Insight Insight
	Parsed  bool
}

const fallbackJustificationLimit = 200

// ParseInsight extracts an Insight from free-form model output. Models
// asked for JSON tend to wrap it in a fenced code block, so that is tried
// first, then the raw text, then a placeholder built from the text itself.
// This is best-effort string surgery, not a contract: creatively formatted
// output degrades to the placeholder rather than erroring.
func ParseInsight(raw string) ParseResult {
	if block, ok := extractFencedBlock(raw); ok {
		if insight, ok := unmarshalInsight(block); ok {
			return ParseResult{Insight: insight, Parsed: true}
		}
	}

	if insight, ok := unmarshalInsight(strings.TrimSpace(raw)); ok {
		return ParseResult{Insight: insight, Parsed: true}
	}

	return ParseResult{Insight: placeholderInsight(raw), Parsed: false}
}

// extractFencedBlock returns the contents of the first fenced code block,
// preferring a ```json fence over a bare ``` one.
func extractFencedBlock(text string) (string, bool) {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(text, fence)
		if start == -1 {
			continue
		}

		inner := text[start+len(fence):]
		end := strings.Index(inner, "```")
		if end == -1 {
			continue
		}

		return strings.TrimSpace(inner[:end]), true
	}

	return "", false
}

func unmarshalInsight(text string) (Insight, bool) {
	var insight Insight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return Insight{}, false
	}
	return insight, true
}

func placeholderInsight(raw string) Insight {
	justification := raw
	if len(justification) > fallbackJustificationLimit {
		justification = justification[:fallbackJustificationLimit]
	}

	return Insight{
		LikelihoodToUpgrade: "Unknown",
		RiskOfChurn:         "Unknown",
		SuggestedAction:     "Review the raw AI response manually",
		Justification:       justification + "...",
	}
}
