package generation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/worksheet-api/internal/domain"
)

func newTestService(t *testing.T, stub *stubGenerator) *Service {
	t.Helper()

	svc, err := NewService(stub, testLogger(), ServiceConfig{Retry: fastRetry()})
	require.NoError(t, err)
	return svc
}

func TestGenerateWorksheet_Success(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("Q", 500)
	stub := &stubGenerator{script: []stubResponse{{text: body}}}
	svc := newTestService(t, stub)

	ws, err := svc.GenerateWorksheet(context.Background(), physicsRequest())

	require.NoError(t, err)
	assert.Equal(t, body, ws.Text)
	assert.Equal(t, 1, ws.Metadata.Attempts)
	assert.Equal(t, 500, ws.Metadata.ContentLength)
	assert.Equal(t, "stub-model", ws.Metadata.Model)
	assert.Equal(t, "CBSE", ws.Metadata.Board)
	assert.Equal(t, "Electromagnetic Induction", ws.Metadata.Topic)
	assert.Equal(t, "Science", ws.Metadata.Stream)
	assert.NotZero(t, ws.Metadata.RequestID)
}

func TestGenerateWorksheet_EmptyTopicFailsBeforeAnyCall(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{text: strings.Repeat("x", 500)}}}
	svc := newTestService(t, stub)

	req := physicsRequest()
	req.Topic = "   "

	_, err := svc.GenerateWorksheet(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, stub.callCount(), "validation failures must not reach the external service")
}

func TestGenerateWorksheet_QuestionCountOutOfRange(t *testing.T) {
	t.Parallel()

	for _, count := range []int{4, 21, -1} {
		stub := &stubGenerator{script: []stubResponse{{text: strings.Repeat("x", 500)}}}
		svc := newTestService(t, stub)

		req := physicsRequest()
		req.QuestionCount = count

		_, err := svc.GenerateWorksheet(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrValidation, "count %d should be rejected", count)
		assert.Equal(t, 0, stub.callCount())
	}
}

func TestGenerateWorksheet_DefaultsQuestionCount(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{text: strings.Repeat("x", 500)}}}
	svc := newTestService(t, stub)

	req := physicsRequest()
	req.QuestionCount = 0

	ws, err := svc.GenerateWorksheet(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultQuestionCount, ws.Metadata.QuestionCount)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "10 multiple-choice questions")
}

func TestGenerateWorksheet_StreamOmittedFromPrompt(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{text: strings.Repeat("x", 500)}}}
	svc := newTestService(t, stub)

	req := physicsRequest()
	req.Stream = ""

	ws, err := svc.GenerateWorksheet(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, stub.prompts, 1)
	assert.NotContains(t, stub.prompts[0], "Stream:")
	assert.Empty(t, ws.Metadata.Stream, "sentinel stream must not be echoed in metadata")
}

func TestGenerateWorksheet_ShortResponseIsIncomplete(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{text: "nope!"}}}
	svc := newTestService(t, stub)

	_, err := svc.GenerateWorksheet(context.Background(), physicsRequest())

	assert.ErrorIs(t, err, ErrIncompleteGeneration)
}

func TestGenerateWorksheet_ExhaustionSurfacesAsExhausted(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{err: assert.AnError}}}
	svc := newTestService(t, stub)

	_, err := svc.GenerateWorksheet(context.Background(), physicsRequest())

	assert.ErrorIs(t, err, ErrServiceExhausted)
	assert.Equal(t, 3, stub.callCount())
}

func TestGenerateWorksheet_RecoversAfterTransientFailures(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{
		{err: assert.AnError},
		{err: assert.AnError},
		{text: strings.Repeat("y", 500)},
	}}
	svc := newTestService(t, stub)

	ws, err := svc.GenerateWorksheet(context.Background(), physicsRequest())

	require.NoError(t, err)
	assert.Equal(t, 3, ws.Metadata.Attempts)
	assert.Equal(t, 500, ws.Metadata.ContentLength)
}

func TestGenerateWorksheet_RequestTimeout(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{script: []stubResponse{{text: strings.Repeat("x", 500)}}}
	svc, err := NewService(stub, testLogger(), ServiceConfig{
		Retry:          fastRetry(),
		RequestTimeout: time.Nanosecond,
	})
	require.NoError(t, err)

	_, err = svc.GenerateWorksheet(context.Background(), physicsRequest())

	assert.ErrorIs(t, err, ErrCancelled)
}
