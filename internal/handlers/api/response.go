package api

import (
	"github.com/gofiber/fiber/v3"

	"quantumtranslator/internal/models"
)

// Fixed client-facing messages. Error details stay in the server log.
const (
	MsgProblemRequired   = "Problem text is required"
	MsgTextRequired      = "Text is required"
	MsgTextTooLong       = "Text is too long"
	MsgInternal          = "Internal server error"
	MsgUpstream          = "Upstream service unavailable"
	MsgMalformedUpstream = "Upstream returned a malformed response"
)

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}
