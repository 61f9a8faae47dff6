package main

import (
	"os"
	"os/signal"
	"syscall"

	"quantumtranslator/internal/config"
	"quantumtranslator/internal/logger"
	"quantumtranslator/internal/metrics"
	"quantumtranslator/internal/server"
)

func main() {
	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if dotenvErr != nil {
		log.Debug().Msg("No .env file found")
	}

	metrics.Init()

	srv := server.New(cfg, &log)
	srv.RegisterTranslatorRoutes()

	// Graceful shutdown
	go func() {
		if err := srv.Start(cfg.ServerAddr()); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
