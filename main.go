package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NextMind-AI/crm-admin-go/config"
	"github.com/NextMind-AI/crm-admin-go/gemini"
	"github.com/NextMind-AI/crm-admin-go/hubspot"
	"github.com/NextMind-AI/crm-admin-go/insight"
	"github.com/NextMind-AI/crm-admin-go/server"
)

func main() {
	cfg := config.Load()

	var httpClient = http.Client{}

	hubspotClient := hubspot.NewClient(
		cfg.HubSpotToken,
		cfg.HubSpotBaseURL,
		httpClient,
	)

	geminiClient := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiBaseURL,
		cfg.GeminiModel,
		httpClient,
	)

	aggregator := insight.NewAggregator(&hubspotClient, geminiClient, cfg.HardwarePipelineID)

	srv := server.New(cfg, &hubspotClient, aggregator)

	go func() {
		if err := srv.Start(cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown after grace period")
		os.Exit(1)
	}

	log.Info().Msg("Server stopped")
}
