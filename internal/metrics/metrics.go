package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Spin Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelTier, LabelOutcome, LabelTrigger},
	)

	SpinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsRejected,
			Help: HelpTextSpinsRejected,
		},
		[]string{LabelReason},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaid = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaid,
			Help: HelpTextAmountPaid,
		},
	)

	CurrentRTP = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCurrentRTP,
			Help: HelpTextCurrentRTP,
		},
	)

	WinProbability = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameWinProbability,
			Help: HelpTextWinProbability,
		},
		[]string{LabelTier},
	)

	RejectionAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRejectionAttempts,
			Help:    HelpTextRejectionAttempts,
			Buckets: RejectionAttemptBuckets,
		},
	)

	RejectionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRejectionFallbacks,
			Help: HelpTextRejectionFallbacks,
		},
	)
)

// Storage and audit Metrics
var (
	StatsStoreRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatsStoreRetries,
			Help: HelpTextStatsStoreRetries,
		},
		[]string{LabelBackend},
	)

	VerificationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVerificationLookups,
			Help: HelpTextVerificationLookups,
		},
		[]string{LabelResult},
	)

	AuditCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAuditCacheEntries,
			Help: HelpTextAuditCacheEntries,
		},
	)

	GlobalSpinCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGlobalSpinCount,
			Help: HelpTextGlobalSpinCount,
		},
	)

	StatsRefreshFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatsRefreshFailures,
			Help: HelpTextStatsRefreshFailures,
		},
	)
)
