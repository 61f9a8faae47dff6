package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"quantumtranslator/internal/config"
	"quantumtranslator/internal/middleware"
	"quantumtranslator/internal/models"
	"quantumtranslator/internal/web"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App    *fiber.App
	Cfg    *config.Config
	Logger *zerolog.Logger
}

// New creates a new server with middleware configured.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		Views:        web.NewEngine(),
		ErrorHandler: errorHandler(logger),
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			logger.Error().
				Str("request_id", requestid.FromContext(c)).
				Interface("panic", e).
				Msg("Recovered from panic")
		},
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))

	return &Server{
		App:    app,
		Cfg:    cfg,
		Logger: logger,
	}
}

// errorHandler turns client errors raised by Fiber into JSON and hides
// everything else behind a generic 500.
func errorHandler(logger *zerolog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
		}

		logger.Error().
			Err(err).
			Str("request_id", requestid.FromContext(c)).
			Str("path", c.Path()).
			Msg("Unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Internal server error"})
	}
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.Logger.Info().Str("addr", addr).Str("service", s.Cfg.ServiceName).Msg("Starting server")
	return s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
