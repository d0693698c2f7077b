package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/worksheet-api/internal/domain"
)

const sampleText = `Here are your practice questions.

1. What does Faraday's law relate?
A) Charge and current
B) Flux change and induced EMF
C) Mass and energy
D) Force and acceleration

2. The SI unit of magnetic flux is
   the weber, named after which physicist?
A. Tesla
B. Faraday
C. Weber
D. Henry

Answer Key
1. B
2) C
`

func TestParseWorksheet(t *testing.T) {
	t.Parallel()

	questions := ParseWorksheet(sampleText)
	require.Len(t, questions, 2)

	q1 := questions[0]
	assert.Equal(t, 1, q1.Number)
	assert.Equal(t, "What does Faraday's law relate?", q1.Text)
	assert.Equal(t, "Flux change and induced EMF", q1.Options[1])
	assert.Equal(t, "B", q1.Answer)

	q2 := questions[1]
	assert.Equal(t, 2, q2.Number)
	assert.Contains(t, q2.Text, "named after which physicist?", "continuation lines join the question")
	assert.Equal(t, "Tesla", q2.Options[0])
	assert.Equal(t, "Henry", q2.Options[3])
	assert.Equal(t, "C", q2.Answer)
}

func TestParseWorksheet_MissingAnswerKey(t *testing.T) {
	t.Parallel()

	questions := ParseWorksheet("1. A lone question?\nA) Yes\nB) No\n")
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Answer)
}

func TestParseWorksheet_NoQuestions(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseWorksheet("free-form prose with no numbering at all"))
	assert.Empty(t, ParseWorksheet(""))
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	ws := sampleWorksheet(sampleText)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ws))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t,
		[]string{"Number", "Question", "Option A", "Option B", "Option C", "Option D", "Answer"},
		rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "What does Faraday's law relate?", rows[1][1])
	assert.Equal(t, "B", rows[1][6])
	assert.Equal(t, "C", rows[2][6])
}

func TestWriteCSV_UnparseableText(t *testing.T) {
	t.Parallel()

	ws := sampleWorksheet("nothing numbered here")

	var buf bytes.Buffer
	err := WriteCSV(&buf, ws)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Zero(t, buf.Len())
}
