package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cageside/fightcred/internal/domain"
	"github.com/cageside/fightcred/internal/logger"
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

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
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

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal error details never reach the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrFightNotFound):
		return http.StatusNotFound, ErrMsgFightNotFound
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrFightAlreadyResolved):
		return http.StatusConflict, ErrMsgFightAlreadyOver
	case errors.Is(err, domain.ErrFightNotUpcoming):
		return http.StatusConflict, ErrMsgFightNotUpcoming
	case errors.Is(err, domain.ErrFightCancelled):
		return http.StatusConflict, ErrMsgFightCancelled
	case errors.Is(err, domain.ErrPredictionsLocked):
		return http.StatusConflict, ErrMsgPredictionsLocked
	case errors.Is(err, domain.ErrUnknownFighterPick):
		return http.StatusBadRequest, ErrMsgUnknownFighter
	case errors.Is(err, domain.ErrInvalidMethodPick):
		return http.StatusBadRequest, ErrMsgInvalidMethodPick
	case errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusBadRequest, ErrMsgInvalidOutcome
	case errors.Is(err, domain.ErrInvalidOdds):
		return http.StatusBadRequest, ErrMsgInvalidOddsLine
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidFightDetails
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
