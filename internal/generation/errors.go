package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidConfig is returned when the generation configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generation configuration")

	// ErrServiceExhausted is returned when every attempt against the external
	// service failed and the retry budget is spent. It is a normal, reportable
	// outcome, not a fault: callers surface it as a service-unavailable-class
	// error and may resubmit the whole request.
	ErrServiceExhausted = errors.New("generation service exhausted all attempts")

	// ErrIncompleteGeneration is returned when the service responded but the
	// text is empty or shorter than the configured minimum content length.
	ErrIncompleteGeneration = errors.New("generated worksheet is empty or incomplete")

	// ErrCancelled is returned when the caller's context was cancelled or its
	// deadline expired before generation completed. Distinct from
	// ErrServiceExhausted so callers can tell "we gave up" from "you gave up".
	ErrCancelled = errors.New("generation cancelled by caller")
)
