package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "DELEGATE_PORT", "SERVICE_NAME", "LLM_PROVIDER", "LLM_MODEL", "LLM_MAX_TOKENS", "LLM_TIMEOUT", "CORS_ORIGINS", "LLM_API_KEY", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.ServerAddr())
	assert.Equal(t, ":3002", cfg.DelegateAddr())
	assert.Equal(t, "Quantum Translator API", cfg.ServiceName)
	assert.Equal(t, "Quantum Translator Delegate API", cfg.DelegateServiceName)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, 900, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.True(t, cfg.IsDev())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("LLM_MAX_TOKENS", "256")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 256, cfg.LLM.MaxTokens)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestLoad_ServiceNameOverridesBoth(t *testing.T) {
	t.Setenv("SERVICE_NAME", "qt-staging")

	cfg := Load()

	assert.Equal(t, "qt-staging", cfg.ServiceName)
	assert.Equal(t, "qt-staging", cfg.DelegateServiceName)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LLM_MAX_TOKENS", "lots")
	t.Setenv("LLM_TIMEOUT", "-3s")

	cfg := Load()

	assert.Equal(t, 900, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoadYAMLConfig_Missing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	y, err := LoadYAMLConfig()
	require.NoError(t, err)
	assert.Nil(t, y)
}

func TestLoadYAMLConfig_Apply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  provider: ollama
  model: llama3
  max_tokens: 400
  temperature: 0.2
  timeout: 10s
cache:
  ttl: 15m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	y, err := LoadYAMLConfig()
	require.NoError(t, err)
	require.NotNil(t, y)

	cfg := Load()
	require.NoError(t, cfg.ApplyYAML(y))

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, 400, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
}

func TestApplyYAML_BadDuration(t *testing.T) {
	cfg := Load()
	err := cfg.ApplyYAML(&YAMLConfig{LLM: LLMFileConfig{Timeout: "soon"}})
	assert.Error(t, err)
}

func TestApplyYAML_Nil(t *testing.T) {
	cfg := Load()
	before := *cfg
	require.NoError(t, cfg.ApplyYAML(nil))
	assert.Equal(t, before, *cfg)
}
