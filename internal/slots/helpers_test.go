package slots

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// MockRecorder is a testify double for Recorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(outcome *domain.SpinOutcome) {
	m.Called(outcome)
}

// failingStore rejects every update, as a lost database connection would
type failingStore struct {
	err error
}

func (f *failingStore) Snapshot(ctx context.Context) (domain.AggregateStats, error) {
	return domain.AggregateStats{}, f.err
}

func (f *failingStore) Update(ctx context.Context, fn rtp.UpdateFunc) (domain.AggregateStats, error) {
	return domain.AggregateStats{}, f.err
}

func (f *failingStore) Ping(ctx context.Context) error {
	return f.err
}

// sequenceSource replays fixed values, for selector boundary tests
type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Next() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func defaultTable(t testing.TB) *paytable.Paytable {
	t.Helper()
	p, err := paytable.Default()
	require.NoError(t, err)
	return p
}

// premiumTable always forces a win on "premium" (base multiplier 10, boost 1.2)
func premiumTable(t testing.TB) *paytable.Paytable {
	t.Helper()
	p := &paytable.Paytable{
		Version: "premium-test",
		MinBet:  10,
		MaxBet:  500,
		RTP:     paytable.RTPPolicy{Target: 0.96, BaseWinProbability: 1.0},
		Symbols: []paytable.Symbol{
			{ID: "premium", Weight: 1, Multiplier: 10},
			{ID: "plain", Weight: 9, Multiplier: 2},
		},
		Tiers: []paytable.Tier{{
			Name:                  "all",
			MinBet:                1,
			MaxBet:                0,
			ProbabilityMultiplier: 1,
			MultiplierBoost:       1.2,
			WinWeights:            []paytable.WinWeight{{Symbol: "premium", Weight: 1}},
		}},
	}
	require.NoError(t, p.Validate())
	return p
}

func newTestService(t testing.TB, table *paytable.Paytable, store rtp.Store, recorder Recorder) *service {
	t.Helper()
	svc, err := NewService(rtp.NewController(store, table), fairness.NewSeedDeriver(""), recorder)
	require.NoError(t, err)

	s := svc.(*service)
	s.now = func() time.Time { return fixedNow }

	var ids atomic.Int64
	s.newID = func() string { return fmt.Sprintf("spin-%d", ids.Add(1)) }
	return s
}
