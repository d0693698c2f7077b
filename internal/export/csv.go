package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/eduforge/worksheet-api/internal/domain"
)

// Question is one parsed multiple-choice question from the worksheet body.
type Question struct {
	Number  int
	Text    string
	Options [4]string
	Answer  string
}

var (
	questionRe  = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	optionRe    = regexp.MustCompile(`^\(?([A-D])[.)\]]\s+(.+)$`)
	answerRe    = regexp.MustCompile(`^(\d+)[.)]?\s*[:\-]?\s*\(?([A-D])\)?`)
	answerKeyRe = regexp.MustCompile(`(?i)answer\s*key`)
)

// ParseWorksheet extracts numbered questions, their lettered options, and
// the answer key from the generated text. The generator is asked for a
// numbered list with options labeled A through D and a trailing answer
// key, but the parse is tolerant: continuation lines are appended to the
// current question, and questions missing from the key keep an empty
// answer.
func ParseWorksheet(text string) []Question {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var questions []Question
	answers := make(map[int]string)
	inAnswerKey := false
	current := -1

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if answerKeyRe.MatchString(line) {
			inAnswerKey = true
			continue
		}

		if inAnswerKey {
			if m := answerRe.FindStringSubmatch(line); m != nil {
				num, err := strconv.Atoi(m[1])
				if err == nil {
					answers[num] = m[2]
				}
			}
			continue
		}

		if m := questionRe.FindStringSubmatch(line); m != nil {
			num, err := strconv.Atoi(m[1])
			if err == nil {
				questions = append(questions, Question{Number: num, Text: m[2]})
				current = len(questions) - 1
				continue
			}
		}

		if current < 0 {
			continue
		}

		if m := optionRe.FindStringSubmatch(line); m != nil {
			idx := int(m[1][0] - 'A')
			questions[current].Options[idx] = m[2]
			continue
		}

		// Continuation of the question text.
		questions[current].Text += " " + line
	}

	for i := range questions {
		if ans, ok := answers[questions[i].Number]; ok {
			questions[i].Answer = ans
		}
	}

	return questions
}

// WriteCSV writes the worksheet as CSV: one row per question with its
// four options and the answer from the key. Returns an error when the
// text yields no parseable questions, so callers can fall back to the
// text export instead of shipping an empty file.
func WriteCSV(w io.Writer, ws *domain.Worksheet) error {
	questions := ParseWorksheet(ws.Text)
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions found in worksheet text", domain.ErrInvalidFormat)
	}

	cw := csv.NewWriter(w)
	header := []string{"Number", "Question", "Option A", "Option B", "Option C", "Option D", "Answer"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, q := range questions {
		row := []string{
			strconv.Itoa(q.Number),
			q.Text,
			q.Options[0],
			q.Options[1],
			q.Options[2],
			q.Options[3],
			q.Answer,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
