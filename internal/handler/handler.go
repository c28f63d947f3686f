package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jayramanidev/portfolio/internal/model"

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

// statusForDomainError maps a domain error code to an HTTP status.
func statusForDomainError(err *model.DomainError) int {
	switch err.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeCityNotFound:
		return http.StatusNotFound
	case model.ErrCodeUpstreamUnavailable:
		return http.StatusBadGateway
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// asDomainError unwraps err as a DomainError, or nil.
func asDomainError(err error) *model.DomainError {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}
