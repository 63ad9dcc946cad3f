package worker

import (
	"context"
	"fmt"

	"github.com/osse101/FairSpin_Go/internal/audit"
	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/metrics"
)

// StatsSource reads the shared aggregate, e.g. rtp.Controller
type StatsSource interface {
	Stats(ctx context.Context) (domain.AggregateStats, error)
}

// StatsRefreshJob republishes the global RTP gauge from the store. With a
// shared backend other instances move the aggregate too, so the value this
// instance observed on its own last spin goes stale.
type StatsRefreshJob struct {
	source StatsSource
}

// NewStatsRefreshJob creates a StatsRefreshJob
func NewStatsRefreshJob(source StatsSource) *StatsRefreshJob {
	return &StatsRefreshJob{source: source}
}

func (j *StatsRefreshJob) Name() string { return "stats_refresh" }

func (j *StatsRefreshJob) Process(ctx context.Context) error {
	stats, err := j.source.Stats(ctx)
	if err != nil {
		metrics.StatsRefreshFailures.Inc()
		return fmt.Errorf("%s: %w", LogMsgStatsRefreshFail, err)
	}
	metrics.CurrentRTP.Set(stats.RTP())
	metrics.GlobalSpinCount.Set(float64(stats.SpinCount))
	return nil
}

// CacheSizer reports verification cache occupancy, e.g. audit.Cache
type CacheSizer interface {
	GetStats() audit.CacheStats
}

// AuditCacheJob exports the verification cache size
type AuditCacheJob struct {
	cache CacheSizer
}

// NewAuditCacheJob creates an AuditCacheJob
func NewAuditCacheJob(cache CacheSizer) *AuditCacheJob {
	return &AuditCacheJob{cache: cache}
}

func (j *AuditCacheJob) Name() string { return "audit_cache_gauge" }

func (j *AuditCacheJob) Process(ctx context.Context) error {
	metrics.AuditCacheEntries.Set(float64(j.cache.GetStats().Size))
	return nil
}
