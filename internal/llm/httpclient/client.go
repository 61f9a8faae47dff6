// Package httpclient talks to OpenAI-compatible chat endpoints that have no
// dedicated SDK in this module: OpenRouter and a local Ollama.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"quantumtranslator/internal/llm"
)

// Supported provider types.
const (
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

const (
	defaultOpenRouterURL = "https://openrouter.ai"
	defaultOllamaURL     = "http://localhost:11434"
)

// Client is a resty-backed completion client.
type Client struct {
	providerType string
	apiKey       string
	baseURL      string
	model        string
	http         *resty.Client
}

// New builds a client for providerType. The per-call deadline comes from the
// request context; timeout is an upper bound for the underlying HTTP client.
func New(providerType, apiKey, baseURL, model string, timeout time.Duration) (*Client, error) {
	providerType = strings.ToLower(providerType)
	switch providerType {
	case ProviderOpenRouter:
		if apiKey == "" {
			return nil, errors.New("openrouter API key is required")
		}
		if baseURL == "" {
			baseURL = defaultOpenRouterURL
		}
	case ProviderOllama:
		if baseURL == "" {
			baseURL = defaultOllamaURL
		}
	default:
		return nil, fmt.Errorf("unsupported provider: %s", providerType)
	}
	if model == "" {
		return nil, errors.New("model is required")
	}

	return &Client{
		providerType: providerType,
		apiKey:       apiKey,
		baseURL:      baseURL,
		model:        model,
		http:         resty.New().SetTimeout(timeout),
	}, nil
}

// Complete sends the prompt as a single user message.
func (c *Client) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if c.providerType == ProviderOllama {
		return c.completeOllama(ctx, req)
	}
	return c.completeOpenRouter(ctx, req)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *Client) completeOpenRouter(ctx context.Context, req llm.Request) (*llm.Response, error) {
	body := map[string]any{
		"model":           c.model,
		"messages":        []chatMessage{{Role: "user", Content: req.Prompt}},
		"response_format": map[string]string{"type": "json_object"},
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.Temperature > 0 {
		body["temperature"] = req.Temperature
	}

	var resp struct {
		Choices []struct {
			Message      chatMessage `json:"message"`
			FinishReason string      `json:"finish_reason"`
		} `json:"choices"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Title", "quantum-translator").
		SetBody(body).
		SetResult(&resp).
		Post(openRouterURL(c.baseURL, "/chat/completions"))
	if err != nil {
		return nil, fmt.Errorf("openrouter request: %w", err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("openrouter completion: %s", r.Status())
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}

	return &llm.Response{
		Content:    resp.Choices[0].Message.Content,
		StopReason: resp.Choices[0].FinishReason,
	}, nil
}

func (c *Client) completeOllama(ctx context.Context, req llm.Request) (*llm.Response, error) {
	options := map[string]any{}
	if req.MaxTokens > 0 {
		options["num_predict"] = req.MaxTokens
	}
	if req.Temperature > 0 {
		options["temperature"] = req.Temperature
	}
	body := map[string]any{
		"model":    c.model,
		"messages": []chatMessage{{Role: "user", Content: req.Prompt}},
		"stream":   false,
		"format":   "json",
		"options":  options,
	}

	var resp struct {
		Message    chatMessage `json:"message"`
		DoneReason string      `json:"done_reason"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(strings.TrimRight(c.baseURL, "/") + "/api/chat")
	if err != nil {
		return nil, fmt.Errorf("ollama request: %w", err)
	}
	if r.IsError() {
		return nil, fmt.Errorf("ollama completion: %s", r.Status())
	}

	return &llm.Response{
		Content:    resp.Message.Content,
		StopReason: resp.DoneReason,
	}, nil
}

// openRouterURL builds a URL for OpenRouter whether base contains /api/v1 or not.
func openRouterURL(base, tail string) string {
	b := strings.TrimRight(base, "/")
	if idx := strings.Index(b, "/api/v1"); idx >= 0 {
		return b[:idx+len("/api/v1")] + tail
	}
	return b + "/api/v1" + tail
}
