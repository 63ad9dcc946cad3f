package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid bet", fmt.Errorf("%w: nope", domain.ErrInvalidBet), http.StatusBadRequest, CodeInvalidBet},
		{"balance", domain.ErrInsufficientBalance, http.StatusBadRequest, CodeInsufficientBalance},
		{"malformed", domain.ErrMalformedRequest, http.StatusBadRequest, CodeMalformedRequest},
		{"not found", domain.ErrSpinNotFound, http.StatusNotFound, CodeNotFound},
		{"mismatch", domain.ErrPaytableMismatch, http.StatusConflict, CodePaytableMismatch},
		{"stats", fmt.Errorf("wrap: %w", domain.ErrStatsUnavailable), http.StatusInternalServerError, CodeInternalError},
		{"invariant", domain.ErrInternalInvariant, http.StatusInternalServerError, CodeInternalError},
		{"shutdown", slots.ErrShuttingDown, http.StatusInternalServerError, CodeInternalError},
		{"unknown", assert.AnError, http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotContains(t, msg, "nope", "internal details must not leak")
		})
	}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusCreated, map[string]int{"a": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, w.Body.String())

	t.Run("unencodable payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		respondJSON(w, http.StatusOK, math.Inf(1))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	respondError(w, http.StatusNotFound, CodeNotFound, "gone")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "gone", Code: CodeNotFound}, body)
}

func TestParseBetAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{`50`, 50, false},
		{`50.0`, 50, false},
		{`1e2`, 100, false},
		{`"75"`, 75, false},
		{`99999999999999999999999`, math.MaxInt64, false},
		{``, 0, true},
		{`null`, 0, true},
		{`0`, 0, true},
		{`-5`, 0, true},
		{`50.5`, 0, true},
		{`"ten"`, 0, true},
		{`""`, 0, true},
		{`true`, 0, true},
		{`{}`, 0, true},
		{`[10]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBetAmount(json.RawMessage(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
