package api

import (
	"github.com/eduforge/worksheet-api/internal/domain"
)

// GenerateWorksheetRequest is the request body for worksheet generation.
// Bounds mirror the domain rules so obviously bad input is rejected at
// the edge; the generation service re-validates after normalization.
type GenerateWorksheetRequest struct {
	Topic        string `json:"topic"         validate:"required,min=2,max=200"`
	Grade        string `json:"grade"         validate:"required,min=1,max=10"`
	Board        string `json:"board"         validate:"required,max=100"`
	Subject      string `json:"subject"       validate:"required,max=100"`
	Stream       string `json:"stream"        validate:"omitempty,max=100"`
	NumQuestions int    `json:"num_questions" validate:"omitempty,gte=5,lte=20"`
}

// ToDomain converts the DTO into a domain request. NumQuestions zero is
// left for Normalize to default.
func (r GenerateWorksheetRequest) ToDomain() domain.WorksheetRequest {
	return domain.WorksheetRequest{
		Board:         r.Board,
		Grade:         r.Grade,
		Subject:       r.Subject,
		Topic:         r.Topic,
		Stream:        r.Stream,
		QuestionCount: r.NumQuestions,
	}
}

// MetadataResponse echoes how the worksheet was produced.
type MetadataResponse struct {
	RequestID     string `json:"request_id"`
	Board         string `json:"board"`
	Grade         string `json:"grade"`
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
	Stream        string `json:"stream,omitempty"`
	QuestionCount int    `json:"question_count"`
	Model         string `json:"model,omitempty"`
	Attempts      int    `json:"attempts"`
	ElapsedMs     int64  `json:"elapsed_ms"`
	ContentLength int    `json:"content_length"`
}

// GenerateWorksheetResponse is the success envelope.
type GenerateWorksheetResponse struct {
	Success   bool             `json:"success"`
	Worksheet string           `json:"worksheet"`
	Metadata  MetadataResponse `json:"metadata"`
}

// worksheetToResponse converts a domain worksheet into the API envelope.
func worksheetToResponse(ws *domain.Worksheet) GenerateWorksheetResponse {
	return GenerateWorksheetResponse{
		Success:   true,
		Worksheet: ws.Text,
		Metadata: MetadataResponse{
			RequestID:     ws.Metadata.RequestID.String(),
			Board:         ws.Metadata.Board,
			Grade:         ws.Metadata.Grade,
			Subject:       ws.Metadata.Subject,
			Topic:         ws.Metadata.Topic,
			Stream:        ws.Metadata.Stream,
			QuestionCount: ws.Metadata.QuestionCount,
			Model:         ws.Metadata.Model,
			Attempts:      ws.Metadata.Attempts,
			ElapsedMs:     ws.Metadata.ElapsedMs,
			ContentLength: ws.Metadata.ContentLength,
		},
	}
}
