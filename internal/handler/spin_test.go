package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/ledger"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

func postSpin(h *SpinHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/spin", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleSpin(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleSpin_Success(t *testing.T) {
	svc := &MockSlotsService{}
	svc.On("Spin", mock.Anything, domain.SpinRequest{UserID: "alice", BetAmount: 10, Balance: 1000}).
		Return(sampleOutcome(), nil)

	h := NewSpinHandler(svc, &MockLedger{}, nil)
	w := postSpin(h, `{"betAmount": 10, "userId": "alice", "balance": 1000}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SpinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "spin-1", resp.SpinID)
	assert.Equal(t, []string{"cherry", "cherry", "cherry"}, resp.Symbols)
	assert.Equal(t, int64(30), resp.Payout)
	assert.Equal(t, "cherry", *resp.WinType)
	assert.Equal(t, int64(1020), resp.Balance)
	assert.Equal(t, resp.CurrentRTP, resp.Odds)
	assert.Equal(t, "crypto-slot-2024-06-01-1000-10-alice-0", resp.Seed)
	assert.Equal(t, []string{"aa", "bb"}, resp.DrawHashes)
	assert.Equal(t, "v1", resp.PaytableVersion)
	svc.AssertExpectations(t)
}

func TestHandleSpin_LossSerializesNullWinType(t *testing.T) {
	outcome := sampleOutcome()
	outcome.Payout = 0
	outcome.WinType = nil

	svc := &MockSlotsService{}
	svc.On("Spin", mock.Anything, mock.Anything).Return(outcome, nil)

	w := postSpin(NewSpinHandler(svc, &MockLedger{}, nil), `{"betAmount": 10, "userId": "alice", "balance": 1000}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"winType":null`)
}

func TestHandleSpin_BalanceFromLedger(t *testing.T) {
	l := &MockLedger{}
	l.On("Balance", mock.Anything, "bob").Return(int64(250), nil)

	svc := &MockSlotsService{}
	svc.On("Spin", mock.Anything, domain.SpinRequest{UserID: "bob", BetAmount: 20, Balance: 250}).
		Return(sampleOutcome(), nil)

	w := postSpin(NewSpinHandler(svc, l, nil), `{"betAmount": "20", "userId": "bob"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	l.AssertExpectations(t)
	svc.AssertExpectations(t)
}

func TestHandleSpin_LedgerFailure(t *testing.T) {
	l := &MockLedger{}
	l.On("Balance", mock.Anything, "bob").Return(int64(0), domain.ErrStatsUnavailable)

	svc := &MockSlotsService{}
	w := postSpin(NewSpinHandler(svc, l, nil), `{"betAmount": 20, "userId": "bob"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeInternalError, decodeError(t, w).Code)
	svc.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything)
}

func TestHandleSpin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"not json", `{`, nil, http.StatusBadRequest, CodeMalformedRequest},
		{"missing user", `{"betAmount": 10, "balance": 5}`, nil, http.StatusBadRequest, CodeMalformedRequest},
		{"bet not a number", `{"betAmount": "ten", "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"bet is a boolean", `{"betAmount": true, "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"bet is an object", `{"betAmount": {}, "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"bet is null", `{"betAmount": null, "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"missing bet", `{"userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"fractional bet", `{"betAmount": 10.5, "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"negative bet", `{"betAmount": -1, "userId": "a", "balance": 5}`, nil, http.StatusBadRequest, CodeInvalidBet},
		{"insufficient balance", `{"betAmount": 10, "userId": "a", "balance": 5}`, domain.ErrInsufficientBalance, http.StatusBadRequest, CodeInsufficientBalance},
		{"balance too large to settle", `{"betAmount": 10, "userId": "a", "balance": 9223372036854775807}`, domain.ErrMalformedRequest, http.StatusBadRequest, CodeMalformedRequest},
		{"store down", `{"betAmount": 10, "userId": "a", "balance": 50}`, domain.ErrStatsUnavailable, http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSlotsService{}
			if tt.svcErr != nil {
				svc.On("Spin", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			w := postSpin(NewSpinHandler(svc, &MockLedger{}, nil), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
			if tt.svcErr == nil {
				svc.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandleSpin_ValidationFieldsReported(t *testing.T) {
	w := postSpin(NewSpinHandler(&MockSlotsService{}, &MockLedger{}, nil), `{"betAmount": 10, "userId": "has space"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeMalformedRequest, body.Code)
	assert.Contains(t, body.Fields, "userId")
}

func TestHandleGetSpin(t *testing.T) {
	lookup := &MockSpinLookup{}
	lookup.On("Get", "spin-1").Return(sampleOutcome(), nil)
	lookup.On("Get", "missing").Return(nil, domain.ErrSpinNotFound)

	h := NewSpinHandler(&MockSlotsService{}, &MockLedger{}, lookup)
	r := chi.NewRouter()
	r.Get("/api/v1/spins/{spinId}", h.HandleGetSpin)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/spins/spin-1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var rec SpinRecordResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, "alice", rec.UserID)
		assert.True(t, rec.Forced)
		assert.Equal(t, "spin-1", rec.SpinID)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/spins/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, CodeNotFound, decodeError(t, w).Code)
	})
}

// End to end through the real engine: a spin's disclosed inputs must verify.
func TestSpinThenVerify_RealEngine(t *testing.T) {
	table, err := paytable.Default()
	require.NoError(t, err)

	controller := rtp.NewController(rtp.NewMemoryStore(), table)
	svc, err := slots.NewService(controller, fairness.NewSeedDeriver(""), nil)
	require.NoError(t, err)

	spinHandler := NewSpinHandler(svc, ledger.NewStatic(1000), nil)
	verifyHandler := NewVerifyHandler(svc)

	for i := 0; i < 25; i++ {
		w := postSpin(spinHandler, `{"betAmount": 300, "userId": "carol"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var spin SpinResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spin))
		assert.Equal(t, "high", spin.Tier)

		body, err := json.Marshal(VerifyRequest{
			Seed:            spin.Seed,
			BetAmount:       spin.BetAmount,
			WinProbability:  floatPtr(spin.WinProbability),
			PaytableVersion: spin.PaytableVersion,
		})
		require.NoError(t, err)

		vw := httptest.NewRecorder()
		verifyHandler.HandleVerify(vw, httptest.NewRequest(http.MethodPost, "/api/v1/verify", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, vw.Code)

		var verified VerifyResponse
		require.NoError(t, json.Unmarshal(vw.Body.Bytes(), &verified))
		assert.Equal(t, spin.Symbols, verified.Symbols)
		assert.Equal(t, spin.Payout, verified.Payout)
		assert.Equal(t, spin.DrawHashes, verified.DrawHashes)
	}
}
