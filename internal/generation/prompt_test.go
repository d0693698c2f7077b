package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eduforge/worksheet-api/internal/domain"
)

func physicsRequest() domain.WorksheetRequest {
	return domain.WorksheetRequest{
		Board:         "CBSE",
		Grade:         "12",
		Subject:       "Physics",
		Topic:         "Electromagnetic Induction",
		Stream:        "Science",
		QuestionCount: 10,
	}
}

func TestRenderPrompt_IsDeterministic(t *testing.T) {
	t.Parallel()

	req := physicsRequest()
	first := RenderPrompt(req)
	second := RenderPrompt(req)

	assert.Equal(t, first, second, "identical requests must yield identical prompts")
}

func TestRenderPrompt_ContainsAllFields(t *testing.T) {
	t.Parallel()

	prompt := RenderPrompt(physicsRequest())

	assert.Contains(t, prompt, "10 multiple-choice questions with four options each")
	assert.Contains(t, prompt, "School Board: CBSE")
	assert.Contains(t, prompt, "Class: 12")
	assert.Contains(t, prompt, "Stream: Science")
	assert.Contains(t, prompt, "Subject: Physics")
	assert.Contains(t, prompt, "Topic/Chapter: Electromagnetic Induction")
	assert.Contains(t, prompt, "options labeled A, B, C, and D")
	assert.Contains(t, prompt, "separate answer key")
}

func TestRenderPrompt_OmitsStreamLineWhenUnset(t *testing.T) {
	t.Parallel()

	req := physicsRequest()
	req.Stream = ""
	req.Normalize()

	prompt := RenderPrompt(req)

	assert.NotContains(t, prompt, "Stream:", "unset stream must not emit a dangling label")
	assert.NotContains(t, prompt, domain.StreamNotSpecified)
}

func TestRenderPrompt_QuestionCountIsHonored(t *testing.T) {
	t.Parallel()

	req := physicsRequest()
	req.QuestionCount = 15

	prompt := RenderPrompt(req)

	assert.True(t, strings.Contains(prompt, "15 multiple-choice questions"),
		"prompt should ask for exactly the requested question count")
}
