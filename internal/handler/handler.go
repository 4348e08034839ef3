package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps an error from the service layer to an HTTP status.
// Validation, auth and not-found errors keep their own message; everything
// else collapses to the endpoint's fixed fallback message with status 500,
// never exposing the root cause to the caller.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation:
			writeError(w, http.StatusBadRequest, domainErr.Message, logger)
			return
		case model.ErrCodeAuth:
			writeError(w, http.StatusUnauthorized, domainErr.Message, logger)
			return
		case model.ErrCodeProductNotFound:
			writeError(w, http.StatusNotFound, domainErr.Message, logger)
			return
		}
	}

	writeError(w, http.StatusInternalServerError, fallback, logger)
}
