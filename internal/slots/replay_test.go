package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

func TestReplay_RejectsBadInput(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		name   string
		seed   string
		bet    int64
		winP   float64
		expect error
	}{
		{"empty seed", "", 10, 0.3, domain.ErrMalformedRequest},
		{"bet below range", "s", 5, 0.3, domain.ErrInvalidBet},
		{"bet above range", "s", 501, 0.3, domain.ErrInvalidBet},
		{"negative probability", "s", 10, -0.1, domain.ErrMalformedRequest},
		{"probability above one", "s", 10, 1.5, domain.ErrMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Replay(table, tt.seed, tt.bet, tt.winP)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.expect)
		})
	}
}

func TestReplay_IsPure(t *testing.T) {
	table := defaultTable(t)

	a, err := Replay(table, "crypto-slot-2024-06-01-1000-50-alice-0", 50, 0.3)
	require.NoError(t, err)
	b, err := Replay(table, "crypto-slot-2024-06-01-1000-50-alice-0", 50, 0.3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "low", a.Tier)
	assert.Equal(t, table.Version, a.PaytableVersion)
	assert.NoError(t, fairness.VerifyDraws("crypto-slot-2024-06-01-1000-50-alice-0", a.DrawHashes))
}

func TestService_Replay(t *testing.T) {
	svc := newTestService(t, premiumTable(t), rtp.NewMemoryStore(), nil)

	outcome, err := svc.Spin(t.Context(), domain.SpinRequest{UserID: "mallory", BetAmount: 50, Balance: 1000})
	require.NoError(t, err)

	res, err := svc.Replay(outcome.Verification.Seed, 50, outcome.Verification.WinProbability)
	require.NoError(t, err)

	assert.Equal(t, int64(600), res.Payout)
	require.NotNil(t, res.WinType)
	assert.Equal(t, "premium", *res.WinType)
	assert.True(t, res.Forced)
}
