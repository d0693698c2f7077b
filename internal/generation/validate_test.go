package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		minLen  int
		wantErr bool
	}{
		{
			name:    "empty response",
			text:    "",
			minLen:  100,
			wantErr: true,
		},
		{
			name:    "whitespace only",
			text:    " \n\t ",
			minLen:  100,
			wantErr: true,
		},
		{
			name:    "five characters is too short",
			text:    "short",
			minLen:  100,
			wantErr: true,
		},
		{
			name:    "just below threshold",
			text:    strings.Repeat("a", 99),
			minLen:  100,
			wantErr: true,
		},
		{
			name:    "at threshold",
			text:    strings.Repeat("a", 100),
			minLen:  100,
			wantErr: false,
		},
		{
			name:    "trimming applies before the length check",
			text:    "  " + strings.Repeat("a", 99) + "  ",
			minLen:  100,
			wantErr: true,
		},
		{
			name:    "zero min length falls back to default",
			text:    strings.Repeat("b", MinResponseLength),
			minLen:  0,
			wantErr: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateResponse(tc.text, tc.minLen)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrIncompleteGeneration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
