package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eduforge/worksheet-api/internal/api/shared"
	"github.com/eduforge/worksheet-api/internal/domain"
)

// WorksheetGenerator is the service boundary the handler depends on.
// Satisfied by *generation.Service.
type WorksheetGenerator interface {
	GenerateWorksheet(ctx context.Context, req domain.WorksheetRequest) (*domain.Worksheet, error)
}

// WorksheetHandler handles worksheet generation HTTP requests.
type WorksheetHandler struct {
	generator WorksheetGenerator
	logger    *slog.Logger
}

// NewWorksheetHandler creates a new WorksheetHandler.
func NewWorksheetHandler(generator WorksheetGenerator, logger *slog.Logger) *WorksheetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorksheetHandler{generator: generator, logger: logger}
}

// GenerateWorksheet handles POST /api/worksheets (and the legacy
// /generate-worksheet path). It decodes and validates the body, runs the
// generation pipeline, and writes the success or error envelope.
func (h *WorksheetHandler) GenerateWorksheet(w http.ResponseWriter, r *http.Request) {
	var req GenerateWorksheetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Validation error: "+err.Error(), err)
		return
	}

	h.logger.InfoContext(r.Context(), "worksheet generation requested",
		"trace_id", shared.GetTraceID(r.Context()),
		"board", req.Board,
		"grade", req.Grade,
		"subject", req.Subject,
		"topic", req.Topic,
		"num_questions", req.NumQuestions)

	ws, err := h.generator.GenerateWorksheet(r.Context(), req.ToDomain())
	if err != nil {
		shared.RespondWithError(w, r,
			MapErrorToStatusCode(err),
			MapErrorToCode(err),
			GetSafeErrorMessage(err),
			err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, worksheetToResponse(ws))
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Root handles GET /, a small welcome payload for humans poking the API.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Welcome to the Worksheet Generator API!",
	})
}
