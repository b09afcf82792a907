package server

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthCheckHandler)

	// CRM proxy endpoints
	s.app.Get("/api/contacts", s.listContactsHandler)
	s.app.Post("/api/contacts", s.createContactHandler)
	s.app.Get("/api/deals", s.listDealsHandler)
	s.app.Post("/api/deals", s.createDealHandler)
	s.app.Get("/api/pipelines", s.listPipelinesHandler)

	// Contact-scoped views
	s.app.Get("/api/contacts/:id/deals", s.contactTrialDealsHandler)
	s.app.Get("/api/contacts/:id/thermostat-deals", s.contactThermostatDealsHandler)
	s.app.Get("/api/contacts/:id/subscriptions", s.contactSubscriptionsHandler)

	// AI enrichment
	s.app.Post("/api/contacts/:id/ai-insight", s.contactInsightHandler)
}
