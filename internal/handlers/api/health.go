package api

import (
	"github.com/gofiber/fiber/v3"

	"quantumtranslator/internal/models"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a health handler reporting service as its name.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check always reports ok while the process is serving.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok", Service: h.service})
}
