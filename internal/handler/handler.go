package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Abhinav-36/Convertcart/internal/middleware"
	"github.com/Abhinav-36/Convertcart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes a structured error response carrying the request
// correlation ID. Internal detail stays in the log, not the payload.
func writeError(w http.ResponseWriter, r *http.Request, status int, title, message string, logger zerolog.Logger) {
	logger.Warn().
		Str("error", title).
		Str("message", message).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request rejected")

	writeJSON(w, status, model.ErrorResponse{
		Error:         title,
		Message:       message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}
