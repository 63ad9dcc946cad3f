package rtp

import (
	"context"
	"sync"

	"github.com/osse101/FairSpin_Go/internal/domain"
)

// UpdateFunc computes the delta for one spin from the stats it observed.
// Stores with optimistic concurrency may call it more than once, so it must
// not have side effects beyond its return value.
type UpdateFunc func(current domain.AggregateStats) (domain.StatsDelta, error)

// Store owns AggregateStats. Update runs fn and applies its delta as one
// atomic read-modify-write: no other Update can observe or change the stats
// between fn's read and the write. If fn fails nothing is written.
type Store interface {
	Snapshot(ctx context.Context) (domain.AggregateStats, error)
	Update(ctx context.Context, fn UpdateFunc) (domain.AggregateStats, error)
	Ping(ctx context.Context) error
}

// MemoryStore is a process-local Store guarded by a mutex
type MemoryStore struct {
	mu    sync.Mutex
	stats domain.AggregateStats
}

// NewMemoryStore creates a store starting at zero
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith seeds the store, mainly for tests and warm restarts
func NewMemoryStoreWith(initial domain.AggregateStats) *MemoryStore {
	return &MemoryStore{stats: initial}
}

func (s *MemoryStore) Snapshot(ctx context.Context) (domain.AggregateStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, nil
}

func (s *MemoryStore) Update(ctx context.Context, fn UpdateFunc) (domain.AggregateStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A caller that gave up before the spin was computed must not be recorded
	if err := ctx.Err(); err != nil {
		return s.stats, err
	}

	delta, err := fn(s.stats)
	if err != nil {
		return s.stats, err
	}

	s.stats = s.stats.Apply(delta)
	return s.stats, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
