package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quantumtranslator/internal/handlers"
	"quantumtranslator/internal/handlers/api"
)

// RegisterTranslatorRoutes mounts the rule-based translator service.
func (s *Server) RegisterTranslatorRoutes() {
	indexHandler := handlers.NewIndexHandler(s.Cfg)
	translateHandler := api.NewTranslateHandler(s.Logger)
	healthHandler := api.NewHealthHandler(s.Cfg.ServiceName)

	s.App.Get("/", indexHandler.Show)
	s.App.Post("/api/translate", translateHandler.Translate)
	s.App.Get("/health", healthHandler.Check)
	s.registerMetrics()
}

// RegisterDelegateRoutes mounts the LLM-backed translator service.
func (s *Server) RegisterDelegateRoutes(svc api.DelegateTranslator) {
	delegateHandler := api.NewDelegateHandler(svc, s.Logger)
	healthHandler := api.NewHealthHandler(s.Cfg.ServiceName)

	s.App.Post("/api/quantum-translate", delegateHandler.Translate)
	s.App.Get("/health", healthHandler.Check)
	s.registerMetrics()
}

func (s *Server) registerMetrics() {
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
