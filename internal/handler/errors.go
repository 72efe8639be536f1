package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imageshare/internal/models"
)

// MessageResponse is the body of every non-payload reply, success or error.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// statusFromError maps the error taxonomy to HTTP statuses. A duplicate
// username maps to 400 rather than 409 to keep the API contract of the
// original service.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError sends the client-facing message for taxonomy errors and a
// generic body for everything else.
func writeServiceError(w http.ResponseWriter, err error, message string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		WriteError(w, "Internal server error", status)
		return
	}
	WriteError(w, message, status)
}
