package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// VerifyRequest replays a disclosed seed. BetAmount is the clamped bet
// reported with the spin and WinProbability its disclosed decision.
type VerifyRequest struct {
	Seed            string   `json:"seed" validate:"required,max=512"`
	BetAmount       int64    `json:"betAmount" validate:"required,min=1"`
	WinProbability  *float64 `json:"winProbability" validate:"required,min=0,max=1"`
	PaytableVersion string   `json:"paytableVersion,omitempty"`
}

// VerifyResponse is the recomputed outcome
type VerifyResponse struct {
	Symbols         []string `json:"symbols"`
	Payout          int64    `json:"payout"`
	WinType         *string  `json:"winType"`
	Tier            string   `json:"tier"`
	DrawHashes      []string `json:"drawHashes"`
	Forced          bool     `json:"forced"`
	FallbackApplied bool     `json:"fallbackApplied"`
	PaytableVersion string   `json:"paytableVersion"`
}

// VerifyHandler exposes the replay path to third parties
type VerifyHandler struct {
	service slots.Service
}

// NewVerifyHandler creates a new VerifyHandler
func NewVerifyHandler(service slots.Service) *VerifyHandler {
	return &VerifyHandler{service: service}
}

// HandleVerify recomputes an outcome from its disclosed inputs
// @Summary Verify a spin
// @Description Replays the hash chain for a seed and returns the symbols it produces. Draw n is sha256(hex(sha256(seed)) + ":" + n) for n = 1, 2, ...; its first 4 bytes are read as a big-endian uint32 and divided by 2^32 (4294967296, not 0xFFFFFFFF), so every draw is in [0, 1).
// @Tags slots
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Disclosed spin inputs"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/verify [post]
func (h *VerifyHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Verify"); err != nil {
		return
	}

	if current := h.service.Paytable().Version; req.PaytableVersion != "" && req.PaytableVersion != current {
		respondServiceError(w, r, LogMsgVerifyFailed,
			fmt.Errorf("%w: requested %q, serving %q", domain.ErrPaytableMismatch, req.PaytableVersion, current))
		return
	}

	result, err := h.service.Replay(req.Seed, req.BetAmount, *req.WinProbability)
	if err != nil {
		respondServiceError(w, r, LogMsgVerifyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyResponse{
		Symbols:         result.Symbols[:],
		Payout:          result.Payout,
		WinType:         result.WinType,
		Tier:            result.Tier,
		DrawHashes:      result.DrawHashes,
		Forced:          result.Forced,
		FallbackApplied: result.FallbackApplied,
		PaytableVersion: result.PaytableVersion,
	})
}
