// Package provider selects and constructs the configured text generator.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/eduforge/worksheet-api/internal/config"
	"github.com/eduforge/worksheet-api/internal/generation"
	"github.com/eduforge/worksheet-api/internal/platform/gemini"
	"github.com/eduforge/worksheet-api/internal/platform/openai"
)

// NewTextGenerator builds the generation.TextGenerator named by the LLM
// configuration. The "mock" provider needs no credential and returns a
// deterministic generator, which keeps the server and TUI usable in
// development without an API key.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) (generation.TextGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		return gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		return openai.NewGenerator(cfg.OpenAIAPIKey, cfg.Model, "")
	case "mock":
		return generation.NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: unknown LLM provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// RetryConfig maps the LLM configuration's backoff settings onto the
// invoker's retry policy, falling back to defaults for unset values.
func RetryConfig(cfg config.LLMConfig) generation.RetryConfig {
	retry := generation.DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BackoffBaseSeconds > 0 {
		retry.BackoffBase = secondsToDuration(cfg.BackoffBaseSeconds)
	}
	if cfg.BackoffMinSeconds > 0 {
		retry.BackoffMin = secondsToDuration(cfg.BackoffMinSeconds)
	}
	if cfg.BackoffMaxSeconds > 0 {
		retry.BackoffMax = secondsToDuration(cfg.BackoffMaxSeconds)
	}
	return retry
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
