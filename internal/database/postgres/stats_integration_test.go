package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

func TestStatsStore_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	store, err := NewStatsStore(pool, "integration")
	require.NoError(t, err)

	t.Run("snapshot of unknown key is zero", func(t *testing.T) {
		stats, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.AggregateStats{}, stats)
	})

	t.Run("update applies delta", func(t *testing.T) {
		stats, err := store.Update(ctx, func(current domain.AggregateStats) (domain.StatsDelta, error) {
			assert.Zero(t, current.SpinCount)
			return domain.StatsDelta{Wagered: 50, Paid: 150, Spins: 1}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AggregateStats{TotalWagered: 50, TotalPaid: 150, SpinCount: 1}, stats)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, snap)
	})

	t.Run("failed update writes nothing", func(t *testing.T) {
		before, err := store.Snapshot(ctx)
		require.NoError(t, err)

		boom := errors.New("draw failed")
		_, err = store.Update(ctx, func(domain.AggregateStats) (domain.StatsDelta, error) {
			return domain.StatsDelta{}, boom
		})
		assert.ErrorIs(t, err, boom)

		after, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		other, err := NewStatsStore(pool, "other")
		require.NoError(t, err)

		stats, err := other.Snapshot(ctx)
		require.NoError(t, err)
		assert.Zero(t, stats.SpinCount)
	})

	assert.NoError(t, store.Ping(ctx))
}

func TestStatsStore_ConcurrentSpinsSerialize(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	store, err := NewStatsStore(pool, "concurrent")
	require.NoError(t, err)

	table, err := paytable.Default()
	require.NoError(t, err)
	controller := rtp.NewController(store, table)

	const workers = 8
	const perWorker = 25

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		sequences = make(map[int64]int)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				var seq int64
				_, err := controller.Spin(ctx, 20, func(current domain.AggregateStats, d rtp.Decision) (int64, error) {
					seq = current.SpinCount
					return 0, nil
				})
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				sequences[seq]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	stats, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), stats.SpinCount)
	assert.Equal(t, int64(workers*perWorker*20), stats.TotalWagered)

	require.Len(t, sequences, workers*perWorker, "every spin must observe a distinct sequence")
	for seq, n := range sequences {
		assert.Equal(t, 1, n, "sequence %d observed twice", seq)
	}
}
