package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional config file, and
// environment variables, in increasing order of precedence. Environment
// variables use the WORKSHEET_ prefix with underscores for nesting, e.g.
// WORKSHEET_SERVER_PORT, WORKSHEET_LLM_PROVIDER. The bare GEMINI_API_KEY
// and OPENAI_API_KEY variables are also honored for credentials.
//
// Returns a validated Config or an error describing what is wrong.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Config file is optional; env-only deployments are fine.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/worksheet-api")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("WORKSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials are commonly provided without the prefix.
	_ = v.BindEnv("llm.gemini_api_key", "WORKSHEET_LLM_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("llm.openai_api_key", "WORKSHEET_LLM_OPENAI_API_KEY", "OPENAI_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers the default value for every configuration key so
// AutomaticEnv can resolve them and a bare environment works out of the box.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.5-pro")
	v.SetDefault("llm.max_attempts", 3)
	v.SetDefault("llm.backoff_base_seconds", 1)
	v.SetDefault("llm.backoff_min_seconds", 4)
	v.SetDefault("llm.backoff_max_seconds", 10)
	v.SetDefault("llm.request_timeout_seconds", 120)

	v.SetDefault("generation.min_response_length", 100)
}

// validate runs struct-tag validation plus the provider-dependent
// credential check.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.LLM.ValidateCredentials(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
