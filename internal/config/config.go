package config

import "fmt"

// Config holds all application configuration.
// It organizes settings into logical groups and is read-only after Load.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains settings for the external text-generation service.
// The credential for the selected provider must be present; the other
// provider's key may stay empty.
type LLMConfig struct {
	// Provider selects the text generator implementation.
	// Values: "gemini", "openai", "mock".
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai mock"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey string `mapstructure:"openai_api_key"`

	// Model is the provider model identifier, e.g. "gemini-2.5-pro".
	Model string `mapstructure:"model" validate:"required"`

	// MaxAttempts is the total attempt budget for one generation,
	// including the first call.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gte=1,lte=10"`

	// Backoff bounds between attempts, in seconds.
	BackoffBaseSeconds int `mapstructure:"backoff_base_seconds" validate:"gte=0"`
	BackoffMinSeconds  int `mapstructure:"backoff_min_seconds"  validate:"gte=0"`
	BackoffMaxSeconds  int `mapstructure:"backoff_max_seconds"  validate:"gte=0"`

	// RequestTimeoutSeconds caps one whole generation, retries included.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gte=1"`
}

// GenerationConfig contains generation pipeline settings that are not
// provider specific.
type GenerationConfig struct {
	// MinResponseLength is the minimum trimmed length for a generated
	// worksheet to be accepted as complete.
	MinResponseLength int `mapstructure:"min_response_length" validate:"required,gte=1"`
}

// ValidateCredentials checks that the selected provider has its API key
// set. This is separate from struct-tag validation because the required
// key depends on the provider value.
func (c LLMConfig) ValidateCredentials() error {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf(
				"gemini API key is required for the gemini provider (set WORKSHEET_LLM_GEMINI_API_KEY or GEMINI_API_KEY)",
			)
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf(
				"openai API key is required for the openai provider (set WORKSHEET_LLM_OPENAI_API_KEY or OPENAI_API_KEY)",
			)
		}
	case "mock":
		// No credential needed.
	}
	return nil
}
