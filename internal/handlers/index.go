package handlers

import (
	"github.com/gofiber/fiber/v3"

	"quantumtranslator/internal/config"
	"quantumtranslator/internal/translator"
)

// IndexHandler renders the interactive translator page.
type IndexHandler struct {
	cfg *config.Config
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(cfg *config.Config) *IndexHandler {
	return &IndexHandler{cfg: cfg}
}

// Show renders the form page.
func (h *IndexHandler) Show(c fiber.Ctx) error {
	categories := make([]string, 0)
	for _, cat := range translator.Priority() {
		categories = append(categories, cat.String())
	}
	return c.Render("index", fiber.Map{
		"Service":    h.cfg.ServiceName,
		"Categories": categories,
	})
}
