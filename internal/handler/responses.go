package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/logger"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationErrorResponse adds per-field details to a MALFORMED_REQUEST error
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondServiceError logs err and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	status, code, message := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(logMsg, "error", err, "code", code)
	} else {
		log.Info(logMsg, "error", err, "code", code)
	}

	respondError(w, status, code, message)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status, stable code and message.
// Anything unrecognized is an internal error and its text is never shown to clients.
func mapServiceErrorToUserMessage(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, CodeInternalError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, CodeInvalidBet, ErrMsgInvalidBetAmount
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, CodeInsufficientBalance, ErrMsgBalanceTooLow
	case errors.Is(err, domain.ErrMalformedRequest):
		return http.StatusBadRequest, CodeMalformedRequest, ErrMsgInvalidRequest
	case errors.Is(err, domain.ErrSpinNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgSpinNotFound
	case errors.Is(err, domain.ErrPaytableMismatch):
		return http.StatusConflict, CodePaytableMismatch, ErrMsgPaytableMismatch
	case errors.Is(err, domain.ErrStatsUnavailable):
		return http.StatusInternalServerError, CodeInternalError, ErrMsgStatsUnavailable
	case errors.Is(err, slots.ErrShuttingDown):
		return http.StatusInternalServerError, CodeInternalError, ErrMsgServiceShuttingDown
	default:
		return http.StatusInternalServerError, CodeInternalError, ErrMsgGenericServerError
	}
}
