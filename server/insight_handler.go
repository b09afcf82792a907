package server

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// contactInsightHandler handles POST /api/contacts/:id/ai-insight
func (s *Server) contactInsightHandler(c fiber.Ctx) error {
	contactID := c.Params("id")
	log.Info().Str("contact_id", contactID).Msg("Received AI insight request")

	result, err := s.aggregator.GenerateInsight(context.Background(), contactID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID).Msg("Error generating AI insight")
		return s.upstreamErrorResponse(c, err, "Failed to generate AI insight")
	}

	log.Info().
		Str("contact_id", contactID).
		Bool("parsed", result.Parsed).
		Strs("degraded_sources", result.DegradedSources).
		Msg("Generated AI insight")

	return c.JSON(result)
}
