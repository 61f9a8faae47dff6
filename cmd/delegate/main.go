package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/storage/redis/v3"

	"quantumtranslator/internal/config"
	"quantumtranslator/internal/delegate"
	"quantumtranslator/internal/llm/factory"
	"quantumtranslator/internal/logger"
	"quantumtranslator/internal/metrics"
	"quantumtranslator/internal/server"
)

func main() {
	dotenvErr := config.LoadDotEnv()
	cfg := config.Load()
	cfg.ServiceName = cfg.DelegateServiceName
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if dotenvErr != nil {
		log.Debug().Msg("No .env file found")
	}

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config file")
	}
	if err := cfg.ApplyYAML(yamlCfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid config file")
	}

	client, err := factory.New(cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("Failed to create completion client")
	}

	var cache delegate.Cache
	if cfg.RedisURL != "" {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		defer store.Close()
		cache = store
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("Caching delegated translations in Redis")
	}

	svc := delegate.NewService(client, cache, delegate.Options{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		CacheTTL:    cfg.CacheTTL,
	}, &log)

	metrics.Init()

	srv := server.New(cfg, &log)
	srv.RegisterDelegateRoutes(svc)

	log.Info().
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Int("max_tokens", cfg.LLM.MaxTokens).
		Dur("timeout", cfg.LLM.Timeout).
		Msg("Completion client ready")

	// Graceful shutdown
	go func() {
		if err := srv.Start(cfg.DelegateAddr()); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
