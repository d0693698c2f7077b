package generation

import (
	"fmt"
	"strings"

	"github.com/eduforge/worksheet-api/internal/domain"
)

// RenderPrompt maps a validated worksheet request to the instruction sent
// to the external service. It is a pure function: identical requests yield
// identical prompts, and there is no failure mode.
//
// The prompt asks for exactly QuestionCount multiple-choice questions with
// four options labeled A-D and a separate answer key. That structure is a
// contract with the model, not something the renderer can enforce; the
// response validator only sanity-checks length.
func RenderPrompt(req domain.WorksheetRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Generate a practice worksheet of %d multiple-choice questions with four options each for the following:\n",
		req.QuestionCount)
	fmt.Fprintf(&b, "School Board: %s\n", req.Board)
	fmt.Fprintf(&b, "Class: %s\n", req.Grade)

	// The stream line is omitted entirely when unset; a dangling
	// "Stream:" label confuses the model.
	if req.HasStream() {
		fmt.Fprintf(&b, "Stream: %s\n", req.Stream)
	}

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Topic/Chapter: %s\n\n", req.Topic)

	b.WriteString("Please provide the questions in a clear, numbered list format ")
	b.WriteString("with the options labeled A, B, C, and D. ")
	b.WriteString("Also, provide a separate answer key at the end.")

	return b.String()
}
