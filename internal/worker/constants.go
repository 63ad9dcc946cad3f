package worker

import "time"

// Log messages
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgStatsRefreshFail = "Stats refresh failed"
)

// Pool sizing defaults
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16

	// JobTimeout bounds a single job so a hung store cannot pin a worker
	JobTimeout = 5 * time.Second
)
