package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/worksheet-api/internal/domain"
)

func sampleWorksheet(text string) *domain.Worksheet {
	req := domain.WorksheetRequest{
		Board:         "CBSE",
		Grade:         "12",
		Subject:       "Physics",
		Topic:         "Electromagnetic Induction",
		Stream:        "Science",
		QuestionCount: 10,
	}
	req.Normalize()
	return domain.NewWorksheet(req, text, "test-model", 1, time.Second)
}

func TestRenderText_IncludesHeaderAndBody(t *testing.T) {
	t.Parallel()

	ws := sampleWorksheet("1. What is Faraday's law?\nA) Option one\n")
	out := RenderText(ws)

	assert.Contains(t, out, "Practice Worksheet")
	assert.Contains(t, out, "Subject: Physics")
	assert.Contains(t, out, "Topic: Electromagnetic Induction")
	assert.Contains(t, out, "Class: 12 (CBSE)")
	assert.Contains(t, out, "Stream: Science")
	assert.Contains(t, out, "1. What is Faraday's law?")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderText_OmitsStreamWhenNotSpecified(t *testing.T) {
	t.Parallel()

	req := domain.WorksheetRequest{
		Board:   "CBSE",
		Grade:   "6",
		Subject: "Science",
		Topic:   "Photosynthesis",
	}
	req.Normalize()
	ws := domain.NewWorksheet(req, "body", "test-model", 1, time.Second)

	out := RenderText(ws)
	assert.NotContains(t, out, "Stream:")
	assert.NotContains(t, out, domain.StreamNotSpecified)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	ws := sampleWorksheet("content")
	var b strings.Builder
	require.NoError(t, WriteText(&b, ws))
	assert.Equal(t, RenderText(ws), b.String())
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subject string
		topic   string
		ext     string
		want    string
	}{
		{"plain", "Physics", "Electromagnetic Induction", "pdf", "Physics_Electromagnetic_Induction_worksheet.pdf"},
		{"strips punctuation", "Maths!", "Algebra: Basics", "csv", "Maths_Algebra_Basics_worksheet.csv"},
		{"dotted extension", "Science", "Cells", ".txt", "Science_Cells_worksheet.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Filename(tc.subject, tc.topic, tc.ext))
		})
	}
}
