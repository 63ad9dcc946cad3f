package audit

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/metrics"
)

// CacheSchemaVersion is the current version of the cached record layout.
// Increment this when SpinOutcome changes shape to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Lookup results reported to metrics
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// CacheConfig sizes the verification cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats is a point-in-time view of cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedSpinEntry struct {
	Version  string
	Outcome  *domain.SpinOutcome
	CachedAt time.Time
}

// Cache keeps recent outcomes so players can fetch the verification record
// of a spin by ID. It is not a ledger: entries expire and are evicted.
type Cache struct {
	lru    *expirable.LRU[string, *cachedSpinEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a cache holding at most cfg.Size outcomes for cfg.TTL
func NewCache(cfg CacheConfig) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, *cachedSpinEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Record stores a committed outcome under its spin ID
func (c *Cache) Record(outcome *domain.SpinOutcome) {
	if outcome == nil || outcome.SpinID == "" {
		return
	}
	c.lru.Add(outcome.SpinID, &cachedSpinEntry{
		Version:  CacheSchemaVersion,
		Outcome:  outcome,
		CachedAt: time.Now(),
	})
}

// Get returns the outcome for spinID.
// Entries written under another schema version are dropped and reported missing.
func (c *Cache) Get(spinID string) (*domain.SpinOutcome, error) {
	entry, found := c.lru.Get(spinID)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(spinID)
		found = false
	}

	if !found {
		c.misses.Add(1)
		metrics.VerificationLookups.WithLabelValues(LookupMiss).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrSpinNotFound, spinID)
	}

	c.hits.Add(1)
	metrics.VerificationLookups.WithLabelValues(LookupHit).Inc()
	return entry.Outcome, nil
}

// GetStats returns hit/miss counters and the current entry count
func (c *Cache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.lru.Purge()
}
