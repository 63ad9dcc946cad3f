package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateStats_RTP(t *testing.T) {
	tests := []struct {
		name     string
		stats    AggregateStats
		expected float64
	}{
		{"empty stats", AggregateStats{}, 0},
		{"paid without wagers uses divisor of one", AggregateStats{TotalPaid: 5}, 5},
		{"regular ratio", AggregateStats{TotalWagered: 1000, TotalPaid: 960, SpinCount: 20}, 0.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.RTP(), 1e-12)
		})
	}
}

func TestAggregateStats_RTPDecimal(t *testing.T) {
	stats := AggregateStats{TotalWagered: 3, TotalPaid: 1}
	assert.Equal(t, "0.333333", stats.RTPDecimal())

	assert.Equal(t, "0.000000", AggregateStats{}.RTPDecimal())
}

func TestAggregateStats_Apply(t *testing.T) {
	stats := AggregateStats{TotalWagered: 100, TotalPaid: 50, SpinCount: 2}

	next := stats.Apply(StatsDelta{Wagered: 10, Paid: 30, Spins: 1})

	assert.Equal(t, AggregateStats{TotalWagered: 110, TotalPaid: 80, SpinCount: 3}, next)
	// Receiver is untouched
	assert.Equal(t, int64(100), stats.TotalWagered)
}

func TestStatsDelta_IsZero(t *testing.T) {
	assert.True(t, StatsDelta{}.IsZero())
	assert.False(t, StatsDelta{Spins: 1}.IsZero())
}
