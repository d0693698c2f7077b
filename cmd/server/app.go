package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eduforge/worksheet-api/internal/config"
	"github.com/eduforge/worksheet-api/internal/generation"
	"github.com/eduforge/worksheet-api/internal/platform/logger"
	"github.com/eduforge/worksheet-api/internal/platform/provider"
)

// application holds the assembled dependencies for the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	service *generation.Service
}

// initializeApp loads configuration, sets up logging, builds the text
// generator for the configured provider, and wires the generation
// service. Returns the assembled application or an initialization error.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model)

	generator, err := provider.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	service, err := generation.NewService(generator, appLogger, generation.ServiceConfig{
		Retry:             provider.RetryConfig(cfg.LLM),
		MinResponseLength: cfg.Generation.MinResponseLength,
		RequestTimeout:    time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  appLogger,
		service: service,
	}, nil
}
