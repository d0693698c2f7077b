package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/eduforge/worksheet-api/internal/domain"
)

// ServiceConfig tunes the generation pipeline.
type ServiceConfig struct {
	Retry RetryConfig

	// MinResponseLength is the minimum trimmed length for a generated
	// worksheet to be accepted. Zero selects MinResponseLength.
	MinResponseLength int

	// RequestTimeout caps one full generation run, backoff delays
	// included. Zero means no cap beyond the caller's context.
	RequestTimeout time.Duration
}

// Service runs the full generation pipeline for one worksheet request:
// validate input, render the prompt, invoke the external service with
// bounded retries, validate the response shape, and wrap the outcome.
type Service struct {
	invoker *Invoker
	gen     TextGenerator
	logger  *slog.Logger
	minLen  int
	timeout time.Duration
}

// NewService creates a Service around the given text generator.
func NewService(gen TextGenerator, logger *slog.Logger, cfg ServiceConfig) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	invoker, err := NewInvoker(gen, logger, cfg.Retry)
	if err != nil {
		return nil, err
	}

	minLen := cfg.MinResponseLength
	if minLen <= 0 {
		minLen = MinResponseLength
	}

	return &Service{
		invoker: invoker,
		gen:     gen,
		logger:  logger,
		minLen:  minLen,
		timeout: cfg.RequestTimeout,
	}, nil
}

// GenerateWorksheet produces a worksheet for the given request.
//
// Validation failures are returned immediately, wrapped in
// domain.ErrValidation, before any external call is made. External
// failures surface as ErrServiceExhausted, ErrIncompleteGeneration or
// ErrCancelled; no raw provider error ever reaches the caller unwrapped.
func (s *Service) GenerateWorksheet(
	ctx context.Context,
	req domain.WorksheetRequest,
) (*domain.Worksheet, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.logger.DebugContext(ctx, "worksheet request rejected",
			"error", err,
			"topic", req.Topic)
		return nil, err
	}

	prompt := RenderPrompt(req)
	s.logger.DebugContext(ctx, "prompt rendered",
		"prompt_length", len(prompt),
		"question_count", req.QuestionCount)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, attempts, err := s.invoker.Invoke(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	if err := ValidateResponse(text, s.minLen); err != nil {
		s.logger.WarnContext(ctx, "generated worksheet failed shape check",
			"error", err,
			"attempts", attempts)
		return nil, err
	}

	ws := domain.NewWorksheet(req, text, s.gen.ModelID(), attempts, elapsed)

	s.logger.InfoContext(ctx, "worksheet generated",
		"request_id", ws.Metadata.RequestID,
		"subject", req.Subject,
		"topic", req.Topic,
		"attempts", attempts,
		"elapsed_ms", ws.Metadata.ElapsedMs,
		"content_length", ws.Metadata.ContentLength)

	return ws, nil
}
