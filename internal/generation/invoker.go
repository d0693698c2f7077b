package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// RetryConfig bounds the invoker's retry loop. The zero value is not
// usable; obtain one from DefaultRetryConfig or the config package.
type RetryConfig struct {
	// MaxAttempts is the total number of calls made against the external
	// service, including the first one. Must be at least 1.
	MaxAttempts int

	// BackoffBase scales the exponential delay between attempts:
	// delay(n) = BackoffBase * 2^n, clamped to [BackoffMin, BackoffMax].
	BackoffBase time.Duration

	// BackoffMin and BackoffMax clamp the computed delay.
	BackoffMin time.Duration
	BackoffMax time.Duration
}

// DefaultRetryConfig returns the retry policy used when no configuration
// is supplied: 3 attempts with delays clamped between 4 and 10 seconds.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BackoffBase: 1 * time.Second,
		BackoffMin:  4 * time.Second,
		BackoffMax:  10 * time.Second,
	}
}

// Invoker owns the bounded-retry state machine around one external
// text-generation call. Each Invoke is an independent, strictly sequential
// unit of work: attempt n+1 never starts before attempt n has failed and
// its backoff delay has elapsed. Invokers are safe for concurrent use;
// per-request attempt state lives on the stack of Invoke.
type Invoker struct {
	gen    TextGenerator
	logger *slog.Logger
	cfg    RetryConfig
}

// NewInvoker creates an Invoker around the given generator.
// Invalid retry settings fall back to defaults with a warning rather than
// failing construction.
func NewInvoker(gen TextGenerator, logger *slog.Logger, cfg RetryConfig) (*Invoker, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: text generator cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	defaults := DefaultRetryConfig()
	if cfg.MaxAttempts < 1 {
		logger.Warn("invalid max attempts, using default",
			"configured", cfg.MaxAttempts,
			"default", defaults.MaxAttempts)
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = defaults.BackoffBase
	}
	if cfg.BackoffMin <= 0 {
		cfg.BackoffMin = defaults.BackoffMin
	}
	if cfg.BackoffMax < cfg.BackoffMin {
		logger.Warn("backoff max below min, using default bounds",
			"min", cfg.BackoffMin,
			"max", cfg.BackoffMax)
		cfg.BackoffMin = defaults.BackoffMin
		cfg.BackoffMax = defaults.BackoffMax
	}

	return &Invoker{gen: gen, logger: logger, cfg: cfg}, nil
}

// Invoke calls the external service with the rendered prompt, retrying on
// failure with exponential backoff until it succeeds or the attempt budget
// is spent. It returns the raw response text and the number of attempts
// made.
//
// Every generator error is treated as retryable except context
// cancellation, which ends the loop immediately with ErrCancelled. An
// empty response body counts as a failed attempt.
func (inv *Invoker) Invoke(ctx context.Context, prompt string) (string, int, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", 0, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}

	var lastErr error

	for attempt := 1; attempt <= inv.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", attempt - 1, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		inv.logger.InfoContext(ctx, "calling generation service",
			"attempt", attempt,
			"max_attempts", inv.cfg.MaxAttempts)

		text, err := inv.gen.Generate(ctx, prompt)
		if err == nil && strings.TrimSpace(text) != "" {
			inv.logger.InfoContext(ctx, "generation service call succeeded",
				"attempt", attempt,
				"response_length", len(text))
			return text, attempt, nil
		}

		if err == nil {
			err = errors.New("service returned an empty response")
		}
		lastErr = err

		// Cancellation is never retried, whether it surfaced from the
		// transport or from our own context check.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			inv.logger.WarnContext(ctx, "generation cancelled mid-attempt",
				"attempt", attempt,
				"error", err)
			return "", attempt, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		inv.logger.WarnContext(ctx, "generation service call failed",
			"attempt", attempt,
			"error", err)

		if attempt == inv.cfg.MaxAttempts {
			break
		}

		delay := inv.backoff(attempt)
		inv.logger.InfoContext(ctx, "retrying after backoff",
			"attempt", attempt,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			inv.logger.WarnContext(ctx, "generation cancelled during backoff",
				"attempt", attempt,
				"ctx_err", ctx.Err())
			return "", attempt, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}
	}

	inv.logger.WarnContext(ctx, "generation attempts exhausted",
		"attempts", inv.cfg.MaxAttempts,
		"last_error", lastErr)

	return "", inv.cfg.MaxAttempts, fmt.Errorf("%w after %d attempts: %v",
		ErrServiceExhausted, inv.cfg.MaxAttempts, lastErr)
}

// backoff computes the delay after the given 1-based attempt number:
// base * 2^attempt clamped to the configured bounds. The sequence is
// non-decreasing, so later retries never wait less than earlier ones.
func (inv *Invoker) backoff(attempt int) time.Duration {
	delay := inv.cfg.BackoffBase << uint(attempt)
	if delay < inv.cfg.BackoffMin {
		delay = inv.cfg.BackoffMin
	}
	if delay > inv.cfg.BackoffMax {
		delay = inv.cfg.BackoffMax
	}
	return delay
}
