package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduforge/worksheet-api/internal/config"
	"github.com/eduforge/worksheet-api/internal/generation"
	"github.com/eduforge/worksheet-api/internal/platform/logger"
	"github.com/eduforge/worksheet-api/internal/platform/provider"
	"github.com/eduforge/worksheet-api/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Generate practice worksheets with an LLM",
	Long: "Worksheet builds board- and grade-specific practice worksheets of " +
		"multiple-choice questions using a configured LLM provider. Run without " +
		"arguments for the interactive form, or use the generate subcommand for " +
		"one-shot output.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Logging to stdout would corrupt the form rendering.
		service, _, err := buildService(cmd.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		if err != nil {
			return err
		}
		return tui.Run(service)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// buildService loads configuration and wires the generation service the
// same way the API server does. A nil log sets up the configured
// structured logger.
func buildService(ctx context.Context, log *slog.Logger) (*generation.Service, *config.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	if log == nil {
		log = logger.Setup(cfg.Server)
	}

	generator, err := provider.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("create text generator: %w", err)
	}

	service, err := generation.NewService(generator, log, generation.ServiceConfig{
		Retry:             provider.RetryConfig(cfg.LLM),
		MinResponseLength: cfg.Generation.MinResponseLength,
		RequestTimeout:    time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create generation service: %w", err)
	}

	return service, cfg, nil
}
