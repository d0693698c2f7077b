package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StreamNotSpecified is the sentinel stored when the optional stream field
// is absent or blank. Downstream prompt rendering treats it as "no stream"
// so no dangling "Stream:" label is ever emitted.
const StreamNotSpecified = "Not specified"

// Bounds for worksheet request fields.
const (
	MinQuestionCount = 5
	MaxQuestionCount = 20

	DefaultQuestionCount = 10

	MinTopicLength = 2
	MaxTopicLength = 200

	MaxGradeLength = 10
	MaxFieldLength = 100
)

// Common validation errors for WorksheetRequest
var (
	ErrEmptyBoard           = errors.New("school board cannot be empty")
	ErrEmptyGrade           = errors.New("grade cannot be empty")
	ErrEmptySubject         = errors.New("subject cannot be empty")
	ErrEmptyTopic           = errors.New("topic cannot be empty")
	ErrTopicLength          = fmt.Errorf("topic must be between %d and %d characters", MinTopicLength, MaxTopicLength)
	ErrGradeLength          = fmt.Errorf("grade must be at most %d characters", MaxGradeLength)
	ErrFieldLength          = fmt.Errorf("field must be at most %d characters", MaxFieldLength)
	ErrInvalidQuestionCount = fmt.Errorf(
		"question count must be between %d and %d",
		MinQuestionCount,
		MaxQuestionCount,
	)
)

// WorksheetRequest holds the validated input for one worksheet generation.
// All required string fields are non-empty after trimming once Normalize
// and Validate have run; a request that fails Validate must never reach
// the external generation service.
type WorksheetRequest struct {
	Board         string `json:"board"`
	Grade         string `json:"grade"`
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
	Stream        string `json:"stream,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// Normalize trims all string fields, maps a blank stream to the
// StreamNotSpecified sentinel, and applies the default question count when
// none was supplied. It mutates the receiver and returns it for chaining.
func (r *WorksheetRequest) Normalize() *WorksheetRequest {
	r.Board = strings.TrimSpace(r.Board)
	r.Grade = strings.TrimSpace(r.Grade)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Topic = strings.TrimSpace(r.Topic)
	r.Stream = strings.TrimSpace(r.Stream)

	if r.Stream == "" {
		r.Stream = StreamNotSpecified
	}

	if r.QuestionCount == 0 {
		r.QuestionCount = DefaultQuestionCount
	}

	return r
}

// Validate checks the request against its declared bounds.
// Callers should Normalize first; Validate does not trim.
// All violations wrap ErrValidation so callers can classify them.
func (r *WorksheetRequest) Validate() error {
	if r.Board == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyBoard)
	}
	if len(r.Board) > MaxFieldLength {
		return fmt.Errorf("%w: board: %w", ErrValidation, ErrFieldLength)
	}

	if r.Grade == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyGrade)
	}
	if len(r.Grade) > MaxGradeLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrGradeLength)
	}

	if r.Subject == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptySubject)
	}
	if len(r.Subject) > MaxFieldLength {
		return fmt.Errorf("%w: subject: %w", ErrValidation, ErrFieldLength)
	}

	if r.Topic == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTopic)
	}
	if len(r.Topic) < MinTopicLength || len(r.Topic) > MaxTopicLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrTopicLength)
	}

	if r.QuestionCount < MinQuestionCount || r.QuestionCount > MaxQuestionCount {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidQuestionCount)
	}

	return nil
}

// HasStream reports whether the request carries a real stream value
// rather than the "not specified" sentinel.
func (r *WorksheetRequest) HasStream() bool {
	return r.Stream != "" && r.Stream != StreamNotSpecified
}

// WorksheetMetadata describes how a worksheet was produced. It echoes the
// request fields for observability and records timing and size data.
type WorksheetMetadata struct {
	RequestID     uuid.UUID     `json:"request_id"`
	Board         string        `json:"board"`
	Grade         string        `json:"grade"`
	Subject       string        `json:"subject"`
	Topic         string        `json:"topic"`
	Stream        string        `json:"stream,omitempty"`
	QuestionCount int           `json:"question_count"`
	Model         string        `json:"model,omitempty"`
	Attempts      int           `json:"attempts"`
	Elapsed       time.Duration `json:"-"`
	ElapsedMs     int64         `json:"elapsed_ms"`
	ContentLength int           `json:"content_length"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// Worksheet is the terminal success value of one generation: the raw
// worksheet text plus metadata about how it was produced. It is created
// once per request and never mutated afterwards.
type Worksheet struct {
	Text     string            `json:"text"`
	Metadata WorksheetMetadata `json:"metadata"`
}

// NewWorksheet builds a Worksheet for the given request and generated text.
func NewWorksheet(req WorksheetRequest, text, model string, attempts int, elapsed time.Duration) *Worksheet {
	stream := ""
	if req.HasStream() {
		stream = req.Stream
	}

	return &Worksheet{
		Text: text,
		Metadata: WorksheetMetadata{
			RequestID:     uuid.New(),
			Board:         req.Board,
			Grade:         req.Grade,
			Subject:       req.Subject,
			Topic:         req.Topic,
			Stream:        stream,
			QuestionCount: req.QuestionCount,
			Model:         model,
			Attempts:      attempts,
			Elapsed:       elapsed,
			ElapsedMs:     elapsed.Milliseconds(),
			ContentLength: len(text),
			GeneratedAt:   time.Now().UTC(),
		},
	}
}
