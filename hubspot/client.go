// Package hubspot is a thin client for the HubSpot CRM v3/v4 REST API,
// covering the object CRUD, batch-read, association and pipeline calls the
// admin dashboard needs. It holds no state beyond credentials; every call
// hits the API fresh.
package hubspot

import (
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

type Config struct {
	AccessToken string
	BaseURL     string
}

func NewClient(accessToken, baseURL string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			AccessToken: accessToken,
			BaseURL:     baseURL,
		},
		httpClient: &httpClient,
	}

	return client
}
