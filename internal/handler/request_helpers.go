package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates its tags.
// If it returns an error the MALFORMED_REQUEST response has already been written.
//
// Example usage:
//
//	var req SpinRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Info(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, CodeMalformedRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   CodeMalformedRequest,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetPathParam retrieves a required chi URL parameter.
// If ok is false the response has already been written.
func GetPathParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if value == "" {
		respondError(w, http.StatusBadRequest, CodeMalformedRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return value, true
}

var maxBet = decimal.NewFromInt(math.MaxInt64)

// parseBetAmount accepts a JSON number, or a string holding one, that is a
// positive whole value. 50, "50" and 50.0 are fine; 50.5, 0, -5, "ten", true
// and null are InvalidBet. Values beyond int64 saturate; the engine clamps
// them to the paytable maximum anyway.
func parseBetAmount(raw json.RawMessage) (int64, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, fmt.Errorf("%w: bet amount is required", domain.ErrInvalidBet)
	}

	if strings.HasPrefix(text, `"`) {
		var quoted string
		if err := json.Unmarshal([]byte(text), &quoted); err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", domain.ErrInvalidBet, text)
		}
		text = quoted
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidBet, text)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: bet must be positive, got %s", domain.ErrInvalidBet, d)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: bet must be a whole number, got %s", domain.ErrInvalidBet, d)
	}
	if d.GreaterThan(maxBet) {
		return math.MaxInt64, nil
	}
	return d.IntPart(), nil
}
