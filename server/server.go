package server

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/NextMind-AI/crm-admin-go/config"
	"github.com/NextMind-AI/crm-admin-go/insight"
)

type Server struct {
	app        *fiber.App
	cfg        *config.Config
	crm        CRMClient
	aggregator *insight.Aggregator
}

func New(cfg *config.Config, crm CRMClient, aggregator *insight.Aggregator) *Server {
	app := fiber.New()

	server := &Server{
		app:        app,
		cfg:        cfg,
		crm:        crm,
		aggregator: aggregator,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("Starting CRM admin server")

	return s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

// Shutdown stops accepting new requests and waits for in-flight ones until
// the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
