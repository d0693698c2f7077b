// Package openai implements the generation.TextGenerator interface using
// the OpenAI chat completions API. It also works against any
// OpenAI-compatible endpoint via a custom base URL.
package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/eduforge/worksheet-api/internal/generation"
)

// Generator adapts the OpenAI SDK to generation.TextGenerator.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates an OpenAI-backed text generator. baseURL may be
// empty to use the default API endpoint.
func NewGenerator(apiKey, model, baseURL string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Generate implements generation.TextGenerator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// ModelID implements generation.TextGenerator.
func (g *Generator) ModelID() string {
	return g.model
}
