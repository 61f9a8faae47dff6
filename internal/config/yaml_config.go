package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// It tunes the delegated variant without touching the environment.
type YAMLConfig struct {
	LLM   LLMFileConfig   `yaml:"llm"`
	Cache CacheFileConfig `yaml:"cache"`
}

// LLMFileConfig overrides LLMConfig fields. Zero values leave the
// environment setting in place.
type LLMFileConfig struct {
	Provider    string   `yaml:"provider"`
	Model       string   `yaml:"model"`
	BaseURL     string   `yaml:"base_url"`
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`
	Timeout     string   `yaml:"timeout"` // Go duration, e.g. "20s"
}

// CacheFileConfig overrides cache settings.
type CacheFileConfig struct {
	TTL string `yaml:"ttl"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyYAML merges file overrides into c. A nil file is a no-op.
// The file format has no API key field.
func (c *Config) ApplyYAML(y *YAMLConfig) error {
	if y == nil {
		return nil
	}

	if y.LLM.Provider != "" {
		c.LLM.Provider = y.LLM.Provider
	}
	if y.LLM.Model != "" {
		c.LLM.Model = y.LLM.Model
	}
	if y.LLM.BaseURL != "" {
		c.LLM.BaseURL = y.LLM.BaseURL
	}
	if y.LLM.MaxTokens > 0 {
		c.LLM.MaxTokens = y.LLM.MaxTokens
	}
	if y.LLM.Temperature != nil {
		c.LLM.Temperature = *y.LLM.Temperature
	}
	if y.LLM.Timeout != "" {
		d, err := time.ParseDuration(y.LLM.Timeout)
		if err != nil {
			return fmt.Errorf("llm.timeout: %w", err)
		}
		c.LLM.Timeout = d
	}
	if y.Cache.TTL != "" {
		d, err := time.ParseDuration(y.Cache.TTL)
		if err != nil {
			return fmt.Errorf("cache.ttl: %w", err)
		}
		c.CacheTTL = d
	}
	return nil
}
