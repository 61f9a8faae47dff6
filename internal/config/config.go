package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	Port         string // primary translator service, env: PORT, default: "3001"
	DelegatePort string // LLM-backed service, env: DELEGATE_PORT, default: "3002"
	ServiceName  string // reported by /health
	// DelegateServiceName is reported by the LLM-backed service. SERVICE_NAME
	// overrides both names.
	DelegateServiceName string

	// Logging
	LogLevel  string
	LogFormat string // "json" or "console"

	// CORS
	CORSOrigins string // Comma-separated allowed origins, "*" for any

	// Cache for delegated answers, disabled when empty
	RedisURL string
	CacheTTL time.Duration

	LLM LLMConfig
}

// LLMConfig configures the completion service used by the delegated variant.
type LLMConfig struct {
	Provider    string // "openai", "openrouter" or "ollama"
	Model       string
	BaseURL     string
	APIKey      string // never logged or returned
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// LoadDotEnv loads a .env file from the working directory if present.
func LoadDotEnv() error {
	return godotenv.Load()
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "3001"),
		DelegatePort: getEnv("DELEGATE_PORT", "3002"),
		ServiceName:  getEnv("SERVICE_NAME", "Quantum Translator API"),

		DelegateServiceName: getEnv("SERVICE_NAME", "Quantum Translator Delegate API"),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		RedisURL:    getEnv("REDIS_URL", ""),
		CacheTTL:    getDuration("CACHE_TTL", time.Hour),
		LLM: LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "openai"),
			Model:       getEnv("LLM_MODEL", "gpt-4.1-mini"),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			APIKey:      getEnv("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			MaxTokens:   getInt("LLM_MAX_TOKENS", 900),
			Temperature: getFloat("LLM_TEMPERATURE", 0),
			Timeout:     getDuration("LLM_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f >= 0 {
		return f
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ServerAddr is the listen address of the primary service.
func (c *Config) ServerAddr() string {
	return ":" + c.Port
}

// DelegateAddr is the listen address of the delegated service.
func (c *Config) DelegateAddr() string {
	return ":" + c.DelegatePort
}
