package api

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"

	"quantumtranslator/internal/delegate"
	"quantumtranslator/internal/metrics"
	"quantumtranslator/internal/models"
	"quantumtranslator/internal/validation"
)

// DelegateTranslator produces LLM-backed translations.
type DelegateTranslator interface {
	Translate(ctx context.Context, text string) (*delegate.Result, error)
}

// DelegateHandler serves the LLM-backed translator.
type DelegateHandler struct {
	svc    DelegateTranslator
	logger *zerolog.Logger
}

// NewDelegateHandler creates a new delegate handler.
func NewDelegateHandler(svc DelegateTranslator, logger *zerolog.Logger) *DelegateHandler {
	return &DelegateHandler{svc: svc, logger: logger}
}

// Translate forwards the text to the completion service and relays its answer.
func (h *DelegateHandler) Translate(c fiber.Ctx) error {
	var body models.DelegateRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		metrics.RecordDelegate(metrics.OutcomeInvalid, 0)
		return jsonError(c, fiber.StatusBadRequest, MsgTextRequired)
	}

	text, err := validation.ValidateText(body.Text)
	if err != nil {
		metrics.RecordDelegate(metrics.OutcomeInvalid, 0)
		if errors.Is(err, validation.ErrTextTooLong) {
			return jsonError(c, fiber.StatusRequestEntityTooLarge, MsgTextTooLong)
		}
		return jsonError(c, fiber.StatusBadRequest, MsgTextRequired)
	}

	res, err := h.svc.Translate(c.Context(), text)
	var upstream time.Duration
	if res != nil {
		upstream = res.Upstream
	}

	switch {
	case err == nil:
	case errors.Is(err, delegate.ErrMalformedUpstreamResponse):
		metrics.RecordDelegate(metrics.OutcomeMalformed, upstream)
		h.logger.Error().Err(err).Msg("Completion service broke the response contract")
		return jsonError(c, fiber.StatusBadGateway, MsgMalformedUpstream)
	case errors.Is(err, delegate.ErrUpstream):
		metrics.RecordDelegate(metrics.OutcomeUpstreamError, upstream)
		h.logger.Error().Err(err).Dur("upstream", upstream).Msg("Completion service failed")
		return jsonError(c, fiber.StatusBadGateway, MsgUpstream)
	default:
		return err
	}

	if res.Cached {
		metrics.RecordDelegate(metrics.OutcomeCacheHit, 0)
	} else {
		metrics.RecordDelegate(metrics.OutcomeOK, upstream)
	}

	h.logger.Info().
		Bool("cached", res.Cached).
		Dur("upstream", upstream).
		Str("routing", res.Translation.Routing).
		Msg("Delegated translation complete")

	return c.JSON(res.Translation)
}
