package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/ledger"
	"github.com/osse101/FairSpin_Go/internal/logger"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// SpinRequest is the public request body. Balance is optional; when it is
// omitted the configured ledger supplies it. BetAmount stays raw so that a
// missing or non-numeric bet is reported as INVALID_BET.
type SpinRequest struct {
	BetAmount json.RawMessage `json:"betAmount" swaggertype:"number"`
	UserID    string          `json:"userId" validate:"required,max=128,userid"`
	Balance   *int64          `json:"balance,omitempty" validate:"omitempty,min=0"`
}

// SpinResponse is the public outcome of one spin
type SpinResponse struct {
	SpinID          string   `json:"spinId"`
	Symbols         []string `json:"symbols"`
	Payout          int64    `json:"payout"`
	WinType         *string  `json:"winType"`
	BetAmount       int64    `json:"betAmount"`
	Balance         int64    `json:"balance"`
	Odds            float64  `json:"odds"`
	CurrentRTP      float64  `json:"currentRtp"`
	WinProbability  float64  `json:"winProbability"`
	MultiplierBoost float64  `json:"multiplierBoost"`
	Tier            string   `json:"tier"`
	TriggerType     string   `json:"triggerType"`
	Message         string   `json:"message"`
	Seed            string   `json:"seed"`
	DrawHashes      []string `json:"drawHashes"`
	SpinSequence    int64    `json:"spinSequence"`
	PaytableVersion string   `json:"paytableVersion"`
}

// SpinRecordResponse is a retained outcome returned by the lookup endpoint
type SpinRecordResponse struct {
	SpinResponse
	UserID          string    `json:"userId"`
	Forced          bool      `json:"forced"`
	FallbackApplied bool      `json:"fallbackApplied"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SpinLookup finds a recently committed outcome by id
type SpinLookup interface {
	Get(spinID string) (*domain.SpinOutcome, error)
}

// SpinHandler serves spins and spin lookups
type SpinHandler struct {
	service slots.Service
	ledger  ledger.Ledger
	lookup  SpinLookup
}

// NewSpinHandler creates a new SpinHandler
func NewSpinHandler(service slots.Service, l ledger.Ledger, lookup SpinLookup) *SpinHandler {
	return &SpinHandler{service: service, ledger: l, lookup: lookup}
}

// HandleSpin handles a slot spin
// @Summary Spin the reels
// @Description Draws three symbols from a seed-derived hash chain. Bets are clamped to the paytable range.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body SpinRequest true "Spin details"
// @Success 200 {object} SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /spin [post]
func (h *SpinHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	log := logger.FromContext(r.Context()).With("user_id", req.UserID)

	bet, err := parseBetAmount(req.BetAmount)
	if err != nil {
		respondServiceError(w, r, LogMsgSpinFailed, err)
		return
	}

	var balance int64
	if req.Balance != nil {
		balance = *req.Balance
	} else {
		balance, err = h.ledger.Balance(r.Context(), req.UserID)
		if err != nil {
			log.Warn(LogMsgBalanceLookupErr, "error", err)
			respondServiceError(w, r, LogMsgSpinFailed, err)
			return
		}
	}

	outcome, err := h.service.Spin(r.Context(), domain.SpinRequest{
		UserID:    req.UserID,
		BetAmount: bet,
		Balance:   balance,
	})
	if err != nil {
		respondServiceError(w, r, LogMsgSpinFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, newSpinResponse(outcome))
}

// HandleGetSpin returns a recently committed outcome for verification
// @Summary Look up a spin
// @Description Returns a retained outcome including its disclosed seed and draw hashes
// @Tags slots
// @Produce json
// @Param spinId path string true "Spin ID"
// @Success 200 {object} SpinRecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/spins/{spinId} [get]
func (h *SpinHandler) HandleGetSpin(w http.ResponseWriter, r *http.Request) {
	spinID, ok := GetPathParam(r, w, "spinId")
	if !ok {
		return
	}

	outcome, err := h.lookup.Get(spinID)
	if err != nil {
		respondServiceError(w, r, LogMsgLookupFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SpinRecordResponse{
		SpinResponse:    newSpinResponse(outcome),
		UserID:          outcome.UserID,
		Forced:          outcome.Verification.Forced,
		FallbackApplied: outcome.Verification.FallbackApplied,
		CreatedAt:       outcome.CreatedAt,
	})
}

func newSpinResponse(o *domain.SpinOutcome) SpinResponse {
	return SpinResponse{
		SpinID:          o.SpinID,
		Symbols:         o.Symbols[:],
		Payout:          o.Payout,
		WinType:         o.WinType,
		BetAmount:       o.BetAmount,
		Balance:         o.NewBalance,
		Odds:            o.CurrentRTP,
		CurrentRTP:      o.CurrentRTP,
		WinProbability:  o.WinProbability,
		MultiplierBoost: o.MultiplierBoost,
		Tier:            o.Tier,
		TriggerType:     o.TriggerType,
		Message:         o.Message,
		Seed:            o.Verification.Seed,
		DrawHashes:      o.Verification.DrawHashes,
		SpinSequence:    o.Verification.SpinSequence,
		PaytableVersion: o.Verification.PaytableVersion,
	}
}
