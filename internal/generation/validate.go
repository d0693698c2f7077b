package generation

import (
	"fmt"
	"strings"
)

// MinResponseLength is the default minimum number of characters (after
// trimming) a generated worksheet must contain to be considered complete.
const MinResponseLength = 100

// ValidateResponse performs a coarse shape check on the generated text:
// non-empty and at least minLength characters once trimmed. It does not
// parse questions or options; structural verification is left to the
// model contract in the prompt. A minLength of zero or less falls back to
// MinResponseLength.
func ValidateResponse(text string, minLength int) error {
	if minLength <= 0 {
		minLength = MinResponseLength
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: response is empty", ErrIncompleteGeneration)
	}
	if len(trimmed) < minLength {
		return fmt.Errorf("%w: response length %d below minimum %d",
			ErrIncompleteGeneration, len(trimmed), minLength)
	}

	return nil
}
