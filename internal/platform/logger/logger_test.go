package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/worksheet-api/internal/config"
)

func TestSetup_ReturnsLoggerAndSetsDefault(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		log := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
		require.NotNil(t, log, "level %s", level)
		assert.Equal(t, log, slog.Default())
	}
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := Setup(config.ServerConfig{Port: 8080, LogLevel: "shouting"})
	require.NotNil(t, log)

	// Info must be enabled and debug must not: the fallback level is info.
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}
