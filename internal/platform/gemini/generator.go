// Package gemini implements the generation.TextGenerator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/eduforge/worksheet-api/internal/generation"
)

// Generator sends prompts to the Gemini API and returns the raw response
// text. Retry and response validation live in the generation package;
// this type only adapts the SDK.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Gemini-backed text generator.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{client: client, model: model}, nil
}

// Generate implements generation.TextGenerator.
// Temperature is pinned to zero: worksheets for the same inputs should be
// as stable as the model allows.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := float32(0)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned no text candidates")
	}

	return text, nil
}

// ModelID implements generation.TextGenerator.
func (g *Generator) ModelID() string {
	return g.model
}
