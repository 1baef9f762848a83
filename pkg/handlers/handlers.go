// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers:
// every failure path emits the same {error, message} envelope so clients
// never need to type-sniff response bodies.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the uniform JSON error envelope.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes the error envelope and logs the outcome. Server faults
// log at error level; client errors at warn. The message is the client-facing
// text only: raw collaborator errors are logged at the call site, never
// included here.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, title, message string) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", title)
	} else {
		logger.Warn("request rejected", "status", status, "error", title)
	}
	RespondJSON(w, status, ErrorBody{Error: title, Message: message})
}
