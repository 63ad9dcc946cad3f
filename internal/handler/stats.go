package handler

import (
	"net/http"

	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// StatsResponse reports the global aggregate the RTP controller steers by
type StatsResponse struct {
	TotalWagered int64   `json:"totalWagered"`
	TotalPaid    int64   `json:"totalPaid"`
	SpinCount    int64   `json:"spinCount"`
	CurrentRTP   float64 `json:"currentRtp"`
	RTP          string  `json:"rtp"` // Exact ratio, fixed precision
	TargetRTP    float64 `json:"targetRtp"`

	PaytableVersion string `json:"paytableVersion"`
}

// PaytableResponse publishes the active table so players can audit odds
type PaytableResponse struct {
	Paytable    *paytable.Paytable `json:"paytable"`
	Fingerprint string             `json:"fingerprint"`
}

// StatsHandler serves read-only engine state
type StatsHandler struct {
	service slots.Service
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service slots.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// HandleGetStats returns the global RTP counters
// @Summary Aggregate RTP statistics
// @Tags slots
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, LogMsgStatsFailed, err)
		return
	}

	table := h.service.Paytable()
	respondJSON(w, http.StatusOK, StatsResponse{
		TotalWagered: stats.TotalWagered,
		TotalPaid:    stats.TotalPaid,
		SpinCount:    stats.SpinCount,
		CurrentRTP:   stats.RTP(),
		RTP:          stats.RTPDecimal(),
		TargetRTP:    table.RTP.Target,

		PaytableVersion: table.Version,
	})
}

// HandleGetPaytable returns the active paytable and its fingerprint
// @Summary Active paytable
// @Tags slots
// @Produce json
// @Success 200 {object} PaytableResponse
// @Router /api/v1/paytable [get]
func (h *StatsHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	table := h.service.Paytable()
	respondJSON(w, http.StatusOK, PaytableResponse{
		Paytable:    table,
		Fingerprint: table.Fingerprint(),
	})
}
