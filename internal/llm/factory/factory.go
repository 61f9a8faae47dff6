package factory

import (
	"fmt"
	"strings"

	"quantumtranslator/internal/config"
	"quantumtranslator/internal/llm"
	"quantumtranslator/internal/llm/gpt"
	"quantumtranslator/internal/llm/httpclient"
)

// ProviderOpenAI selects the official OpenAI SDK.
const ProviderOpenAI = "openai"

// New builds the completion client named by cfg.Provider.
func New(cfg config.LLMConfig) (llm.Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		c, err := gpt.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case httpclient.ProviderOpenRouter, httpclient.ProviderOllama:
		c, err := httpclient.New(cfg.Provider, cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
