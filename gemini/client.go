// Package gemini calls the Google Generative Language REST API for
// text-in/text-out completions and parses the model's free-form output
// into a structured customer insight.
package gemini

import (
	"context"
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

func NewClient(apiKey, baseURL, model string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   model,
		},
		httpClient: &httpClient,
	}

	return client
}

// GenerateContent sends a single prompt and returns the first candidate's
// text. Sampling parameters are fixed; the insight prompt relies on them.
func (c Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return c.generateContent(ctx, prompt)
}
