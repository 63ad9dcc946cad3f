package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/paytable"
)

func TestHandleGetStats(t *testing.T) {
	table, err := paytable.Default()
	require.NoError(t, err)

	t.Run("reports ratio", func(t *testing.T) {
		svc := &MockSlotsService{}
		svc.On("Stats", mock.Anything).Return(domain.AggregateStats{TotalWagered: 3, TotalPaid: 1, SpinCount: 2}, nil)
		svc.On("Paytable").Return(table)

		w := httptest.NewRecorder()
		NewStatsHandler(svc).HandleGetStats(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0.333333", resp.RTP)
		assert.Equal(t, int64(2), resp.SpinCount)
		assert.Equal(t, table.RTP.Target, resp.TargetRTP)
		assert.Equal(t, table.Version, resp.PaytableVersion)
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := &MockSlotsService{}
		svc.On("Stats", mock.Anything).Return(domain.AggregateStats{}, domain.ErrStatsUnavailable)

		w := httptest.NewRecorder()
		NewStatsHandler(svc).HandleGetStats(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, ErrMsgStatsUnavailable, decodeError(t, w).Error)
	})
}

func TestHandleGetPaytable(t *testing.T) {
	table, err := paytable.Default()
	require.NoError(t, err)

	svc := &MockSlotsService{}
	svc.On("Paytable").Return(table)

	w := httptest.NewRecorder()
	NewStatsHandler(svc).HandleGetPaytable(w, httptest.NewRequest(http.MethodGet, "/api/v1/paytable", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Paytable    paytable.Paytable `json:"paytable"`
		Fingerprint string            `json:"fingerprint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, table.Fingerprint(), resp.Fingerprint)
	assert.Equal(t, table.Version, resp.Paytable.Version)
	assert.Len(t, resp.Paytable.Tiers, len(table.Tiers))
}
