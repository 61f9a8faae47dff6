package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"quantumtranslator/internal/metrics"
	"quantumtranslator/internal/models"
	"quantumtranslator/internal/translator"
	"quantumtranslator/internal/validation"
)

// TranslateHandler serves the rule-based translator.
type TranslateHandler struct {
	logger *zerolog.Logger
}

// NewTranslateHandler creates a new translate handler.
func NewTranslateHandler(logger *zerolog.Logger) *TranslateHandler {
	return &TranslateHandler{logger: logger}
}

// Translate classifies the problem and returns its templated explanation.
// A body that cannot be decoded is treated like a missing problem.
func (h *TranslateHandler) Translate(c fiber.Ctx) error {
	var body models.TranslateRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		h.logger.Debug().Err(err).Msg("Undecodable translate request")
		return jsonError(c, fiber.StatusBadRequest, MsgProblemRequired)
	}

	problem, err := validation.ValidateProblem(body.Problem)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, MsgProblemRequired)
	}

	result := translator.Translate(problem)
	metrics.RecordClassification(result.Category)

	h.logger.Debug().
		Str("category", result.Category.String()).
		Int("problem_length", len(problem)).
		Msg("Problem classified")

	return c.JSON(result)
}
