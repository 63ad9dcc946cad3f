package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Spin metric names
const (
	MetricNameSpinsTotal          = "slot_spins_total"
	MetricNameSpinsRejected       = "slot_spins_rejected_total"
	MetricNameAmountWagered       = "slot_amount_wagered_total"
	MetricNameAmountPaid          = "slot_amount_paid_total"
	MetricNameCurrentRTP          = "slot_current_rtp"
	MetricNameWinProbability      = "slot_win_probability"
	MetricNameRejectionAttempts   = "slot_rejection_attempts"
	MetricNameRejectionFallbacks  = "slot_rejection_fallbacks_total"
	MetricNameStatsStoreRetries   = "slot_stats_store_retries_total"
	MetricNameVerificationLookups = "slot_verification_lookups_total"
	MetricNameAuditCacheEntries   = "slot_audit_cache_entries"
	MetricNameGlobalSpinCount     = "slot_global_spin_count"

	MetricNameStatsRefreshFailures = "slot_stats_refresh_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Spin metric help text
const (
	HelpTextSpinsTotal          = "Total number of committed spins"
	HelpTextSpinsRejected       = "Total number of spins rejected before or during commit"
	HelpTextAmountWagered       = "Total amount wagered across committed spins"
	HelpTextAmountPaid          = "Total amount paid out across committed spins"
	HelpTextCurrentRTP          = "Cumulative return to player as last observed by this instance"
	HelpTextWinProbability      = "Forced-win probability of the most recent spin per tier"
	HelpTextRejectionAttempts   = "Triples drawn per unforced spin before a non-matching one was found"
	HelpTextRejectionFallbacks  = "Unforced spins that exhausted rejection sampling"
	HelpTextStatsStoreRetries   = "Optimistic transaction retries in the shared stats store"
	HelpTextVerificationLookups = "Verification lookups of recent spins by result"
	HelpTextAuditCacheEntries   = "Spins currently retained for verification lookups"
	HelpTextGlobalSpinCount     = "Spin count of the shared aggregate at the last refresh"

	HelpTextStatsRefreshFailures = "Background refreshes of the shared aggregate that failed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelTier    = "tier"
	LabelOutcome = "outcome"
	LabelTrigger = "trigger"
	LabelReason  = "reason"
	LabelBackend = "backend"
	LabelResult  = "result"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are tuned for a CPU-bound API with an optional database hop
var HTTPLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// RejectionAttemptBuckets cover the expected handful of redraws up to the cap
var RejectionAttemptBuckets = []float64{1, 2, 3, 5, 10, 25, 100, 1000}
