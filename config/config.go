package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HubSpotToken            string
	GeminiAPIKey            string
	Port                    string
	HubSpotBaseURL          string
	GeminiBaseURL           string
	GeminiModel             string
	HardwarePipelineID      string
	SubscriptionsObjectType string
	ShutdownTimeoutSeconds  int
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		HubSpotToken:            getEnv("HUBSPOT_ACCESS_TOKEN", ""),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		Port:                    getEnv("PORT", "8080"),
		HubSpotBaseURL:          getEnv("HUBSPOT_BASE_URL", "https://api.hubapi.com"),
		GeminiBaseURL:           getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		HardwarePipelineID:      getEnv("HARDWARE_PIPELINE_ID", "762659041"),
		SubscriptionsObjectType: getEnv("SUBSCRIPTIONS_OBJECT_TYPE", "2-43306982"),
		ShutdownTimeoutSeconds:  getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}

	if cfg.HubSpotToken == "" {
		log.Fatal("HUBSPOT_ACCESS_TOKEN environment variable is required")
	}

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
