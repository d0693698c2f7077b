package generation

import "context"

// TextGenerator is the single adapter interface for the external
// text-generation service. Implementations live under internal/platform
// and are treated as opaque: one prompt in, one text completion out.
// Any failure is reported as an error; the Invoker decides what is
// retryable.
type TextGenerator interface {
	// Generate sends the prompt to the external service and returns the
	// raw response text. The context governs cancellation and deadlines
	// for the underlying transport.
	Generate(ctx context.Context, prompt string) (string, error)

	// ModelID returns the identifier of the model serving requests,
	// used for result metadata and logging.
	ModelID() string
}
