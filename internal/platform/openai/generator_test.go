package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduforge/worksheet-api/internal/generation"
)

func TestNewGenerator_RejectsMissingSettings(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator("", "gpt-4o-mini", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = NewGenerator("some-key", "", "")
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewGenerator_ModelID(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator("some-key", "gpt-4o-mini", "")
	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", g.ModelID())
}
