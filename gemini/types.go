package gemini

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

// Insight is the four-field structured summary the model is instructed to
// return for a contact.
type Insight struct {
	LikelihoodToUpgrade string `json:"likelihoodToUpgrade" jsonschema:"description=Low / Medium / High with a short qualifier"`
	RiskOfChurn         string `json:"riskOfChurn" jsonschema:"description=Low / Medium / High with a short qualifier"`
	SuggestedAction     string `json:"suggestedAction" jsonschema:"description=One concrete next step naming a specific NextMind AI feature"`
	Justification       string `json:"justification" jsonschema:"description=One or two sentences grounded in the health summary"`
}
