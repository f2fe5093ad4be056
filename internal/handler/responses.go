package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wmateusz/mealweek/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already written; nothing left but to log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgStorageError       = "Storage is temporarily unavailable. Please try again."
	ErrMsgWeekNotFoundError  = "No plan exists for that week"
	ErrMsgRecipeNotFound     = "Recipe not found"
	ErrMsgInvalidReference   = "Invalid day or date reference"
	ErrMsgPartialMoveError   = "The move was only partially saved. Reload and retry."
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and a
// user-safe message. Internal error details are never exposed to clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, ErrMsgInvalidReference
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidUnit):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, ErrMsgWeekNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFound
	case errors.Is(err, domain.ErrPartialMove):
		return http.StatusServiceUnavailable, ErrMsgPartialMoveError
	case errors.Is(err, domain.ErrStorage):
		return http.StatusServiceUnavailable, ErrMsgStorageError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
