package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/NextMind-AI/crm-admin-go/gemini"
	"github.com/NextMind-AI/crm-admin-go/hubspot"
)

const duplicateContactMessage = "A contact with this email already exists in HubSpot. Every customer must have a unique email address."

// listContactsHandler handles GET /api/contacts
func (s *Server) listContactsHandler(c fiber.Ctx) error {
	log.Info().Msg("Received contact list request")

	contacts, err := s.crm.ListContacts(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error listing contacts")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve contacts from HubSpot")
	}

	return c.JSON(contacts)
}

// createContactHandler handles POST /api/contacts
func (s *Server) createContactHandler(c fiber.Ctx) error {
	var request CreateContactRequest
	if err := c.Bind().JSON(&request); err != nil {
		log.Error().Err(err).Msg("Error parsing JSON")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_BODY",
				Message: "Request body must be JSON with a properties object",
			},
		})
	}

	log.Info().Str("email", request.Properties["email"]).Msg("Received create contact request")

	contact, err := s.crm.CreateContact(context.Background(), request.Properties)
	if err != nil {
		if hubspot.IsDuplicateContact(err) {
			log.Info().Str("email", request.Properties["email"]).Msg("Rejected duplicate contact")
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error: ErrorDetail{
					Code:    "DUPLICATE_CONTACT",
					Message: duplicateContactMessage,
				},
			})
		}

		log.Error().Err(err).Msg("Error creating contact")
		return s.upstreamErrorResponse(c, err, "Failed to create contact in HubSpot")
	}

	return c.Status(fiber.StatusCreated).JSON(contact)
}

// listDealsHandler handles GET /api/deals
func (s *Server) listDealsHandler(c fiber.Ctx) error {
	log.Info().Msg("Received deal list request")

	deals, err := s.crm.ListDeals(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error listing deals")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve deals from HubSpot")
	}

	return c.JSON(deals)
}

// createDealHandler handles POST /api/deals
func (s *Server) createDealHandler(c fiber.Ctx) error {
	var request CreateDealRequest
	if err := c.Bind().JSON(&request); err != nil {
		log.Error().Err(err).Msg("Error parsing JSON")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_BODY",
				Message: "Request body must be JSON with a dealProperties object",
			},
		})
	}

	log.Info().
		Str("deal_name", request.DealProperties["dealname"]).
		Str("contact_id", request.ContactID).
		Msg("Received create deal request")

	deal, err := s.crm.CreateDeal(context.Background(), request.DealProperties, request.ContactID)
	if err != nil {
		log.Error().Err(err).Msg("Error creating deal")
		return s.upstreamErrorResponse(c, err, "Failed to create deal in HubSpot")
	}

	return c.Status(fiber.StatusCreated).JSON(deal)
}

// listPipelinesHandler handles GET /api/pipelines
func (s *Server) listPipelinesHandler(c fiber.Ctx) error {
	log.Info().Msg("Received pipeline list request")

	pipelines, err := s.crm.ListDealPipelines(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Error listing pipelines")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve pipelines from HubSpot")
	}

	return c.JSON(hubspot.PipelineList{Results: pipelines})
}

// contactTrialDealsHandler handles GET /api/contacts/:id/deals
func (s *Server) contactTrialDealsHandler(c fiber.Ctx) error {
	contactID := c.Params("id")
	log.Info().Str("contact_id", contactID).Msg("Received trial deals request")

	deals, err := s.crm.DealsForContact(context.Background(), contactID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID).Msg("Error fetching deals for contact")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve deals for contact")
	}

	trials := make([]hubspot.Object, 0, len(deals))
	for _, deal := range deals {
		if deal.Properties["pipeline"] != s.cfg.HardwarePipelineID {
			trials = append(trials, deal)
		}
	}

	return c.JSON(DealListResponse{Results: trials})
}

// contactThermostatDealsHandler handles GET /api/contacts/:id/thermostat-deals
func (s *Server) contactThermostatDealsHandler(c fiber.Ctx) error {
	contactID := c.Params("id")
	log.Info().Str("contact_id", contactID).Msg("Received thermostat deals request")

	deals, err := s.crm.DealsForContact(context.Background(), contactID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID).Msg("Error fetching deals for contact")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve deals for contact")
	}

	hardware := make([]hubspot.Object, 0, len(deals))
	for _, deal := range deals {
		if deal.Properties["pipeline"] == s.cfg.HardwarePipelineID {
			hardware = append(hardware, deal)
		}
	}

	quantities := s.aggregator.HardwareQuantities(context.Background(), hardware)

	results := make([]DealWithQuantity, 0, len(hardware))
	for _, deal := range hardware {
		results = append(results, DealWithQuantity{
			Object:   deal,
			Quantity: quantities[deal.ID],
		})
	}

	return c.JSON(ThermostatDealListResponse{Results: results})
}

// contactSubscriptionsHandler handles GET /api/contacts/:id/subscriptions
func (s *Server) contactSubscriptionsHandler(c fiber.Ctx) error {
	contactID := c.Params("id")
	log.Info().Str("contact_id", contactID).Msg("Received subscriptions request")

	subscriptions, err := s.crm.SubscriptionsForContact(context.Background(), s.cfg.SubscriptionsObjectType, contactID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", contactID).Msg("Error fetching subscriptions for contact")
		return s.upstreamErrorResponse(c, err, "Failed to retrieve subscriptions for contact")
	}

	return c.JSON(SubscriptionListResponse{Results: subscriptions})
}

// upstreamErrorResponse re-signals an outbound failure with the upstream
// status where one exists and the raw upstream body under details.
func (s *Server) upstreamErrorResponse(c fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	var details any

	var hubspotErr *hubspot.APIError
	var geminiErr *gemini.APIError
	switch {
	case errors.As(err, &hubspotErr):
		status = hubspotErr.StatusCode
		details = upstreamDetails(hubspotErr.Body)
	case errors.As(err, &geminiErr):
		status = geminiErr.StatusCode
		details = upstreamDetails(geminiErr.Body)
	}

	return c.Status(status).JSON(ErrorResponse{
		Error: ErrorDetail{
			Code:    "UPSTREAM_ERROR",
			Message: message,
			Details: details,
		},
	})
}

// upstreamDetails keeps a JSON upstream body structured instead of
// re-escaping it as a string.
func upstreamDetails(body string) any {
	if json.Valid([]byte(body)) {
		return json.RawMessage(body)
	}
	return body
}
