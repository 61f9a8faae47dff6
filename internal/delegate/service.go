// Package delegate answers problem descriptions by forwarding them to an
// external completion service under a fixed prompt.
package delegate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"quantumtranslator/internal/llm"
	"quantumtranslator/internal/models"
)

// Cache stores parsed translations keyed by a hash of the input text.
// github.com/gofiber/storage/redis satisfies it. Get returns nil, nil on a miss.
type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
}

// Options tune the completion call.
type Options struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	CacheTTL    time.Duration
}

// Result reports how a translation was obtained.
type Result struct {
	Translation *models.DelegatedTranslation
	Cached      bool
	// Upstream is the time spent in the completion call, zero on a cache hit.
	Upstream time.Duration
}

// Service turns text into a DelegatedTranslation.
type Service struct {
	client llm.Client
	cache  Cache
	opts   Options
	logger *zerolog.Logger
}

// NewService creates a service. cache may be nil.
func NewService(client llm.Client, cache Cache, opts Options, logger *zerolog.Logger) *Service {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 900
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	return &Service{client: client, cache: cache, opts: opts, logger: logger}
}

// Translate asks the completion service for the five-field translation of
// text. Failures wrap ErrUpstream or ErrMalformedUpstreamResponse.
func (s *Service) Translate(ctx context.Context, text string) (*Result, error) {
	key := cacheKey(text)
	if cached := s.fromCache(key); cached != nil {
		return &Result{Translation: cached, Cached: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.Complete(ctx, llm.Request{
		Prompt:      BuildPrompt(text),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Result{Upstream: elapsed}, fmt.Errorf("%w: timed out after %s", ErrUpstream, s.opts.Timeout)
		}
		return &Result{Upstream: elapsed}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return &Result{Upstream: elapsed}, fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	translation, err := ParseCompletion(resp.Content)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("stop_reason", resp.StopReason).
			Int("content_length", len(resp.Content)).
			Msg("Completion could not be parsed")
		return &Result{Upstream: elapsed}, err
	}

	s.toCache(key, translation)
	return &Result{Translation: translation, Upstream: elapsed}, nil
}

func (s *Service) fromCache(key string) *models.DelegatedTranslation {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Cache read failed")
		return nil
	}
	if data == nil {
		return nil
	}
	var t models.DelegatedTranslation
	if err := json.Unmarshal(data, &t); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding unreadable cache entry")
		return nil
	}
	return &t
}

func (s *Service) toCache(key string, t *models.DelegatedTranslation) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	if err := s.cache.Set(key, data, s.opts.CacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("Cache write failed")
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "delegate:" + hex.EncodeToString(sum[:])
}
