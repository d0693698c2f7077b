package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the standard error envelope: success is always false,
// Error carries a client-safe message, and ErrorCode a stable machine
// readable code.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	TraceID   string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err, "path", r.URL.Path)
	}
}

// RespondWithError writes the standard error envelope and logs the
// underlying error when one is supplied. Server errors (5xx) are logged
// at ERROR level, client errors at DEBUG; the raw error never reaches
// the response body.
func RespondWithError(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errorCode string,
	message string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	attrs := []any{
		"status_code", status,
		"error_code", errorCode,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method,
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	slog.Log(r.Context(), logLevel, "API error response", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: errorCode,
		TraceID:   traceID,
	})
}
