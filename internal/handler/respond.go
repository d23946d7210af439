package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes v as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// RespondError writes a plain {"message": ...} error body.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}

// RespondValidationError writes a 400 with per-field details.
func RespondValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation Error",
		"message": message,
		"details": fields,
	})
}

// RespondServerError logs err and writes a generic 500. The message body
// never carries internal details.
func RespondServerError(w http.ResponseWriter, err error) {
	slog.Error("server error", "error", err)
	RespondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "Server error",
		"message": "Something went wrong on the server",
	})
}
