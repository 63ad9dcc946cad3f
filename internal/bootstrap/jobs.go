package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/FairSpin_Go/internal/scheduler"
	"github.com/osse101/FairSpin_Go/internal/worker"
)

// BackgroundJobs owns the scheduler and the pool it feeds
type BackgroundJobs struct {
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
}

// StartBackgroundJobs refreshes exported gauges every interval.
// A zero interval starts the pool but schedules nothing.
func StartBackgroundJobs(interval time.Duration, stats worker.StatsSource, cache worker.CacheSizer) *BackgroundJobs {
	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(interval, worker.NewStatsRefreshJob(stats))
	sched.Schedule(interval, worker.NewAuditCacheJob(cache))

	slog.Info(LogMsgBackgroundJobsStarted, "interval", interval)
	return &BackgroundJobs{Scheduler: sched, Pool: pool}
}

// Stop stops scheduling, then waits for running jobs
func (b *BackgroundJobs) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
