package postgres

// rtp_stats table
const (
	statsTable      = "rtp_stats"
	colStatsKey     = "stats_key"
	colTotalWagered = "total_wagered"
	colTotalPaid    = "total_paid"
	colSpinCount    = "spin_count"
	colUpdatedAt    = "updated_at"
)

// Error Messages - Stats Store Operations
const (
	ErrMsgFailedToBuildQuery      = "failed to build query"
	ErrMsgFailedToCreateManager   = "failed to create transaction manager"
	ErrMsgFailedToInitStatsRow    = "failed to initialize stats row"
	ErrMsgFailedToLockStatsRow    = "failed to lock stats row"
	ErrMsgFailedToReadStats       = "failed to read stats"
	ErrMsgFailedToApplyStatsDelta = "failed to apply stats delta"
)
