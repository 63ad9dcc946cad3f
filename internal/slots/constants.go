package slots

// Rejection sampling
const (
	// MaxRejectionAttempts caps how many unforced triples are drawn looking for a
	// non-matching one. Past the cap the last symbol is replaced deterministically.
	MaxRejectionAttempts = 1000
)

// Thresholds for special triggers
const (
	BigWinThreshold = 10 // payout >= 10x bet triggers big win
)

// Log messages
const (
	LogMsgSpinDecided     = "Spin decided"
	LogMsgSpinWon         = "Spin won"
	LogMsgBetClamped      = "Bet clamped to paytable range"
	LogMsgFallbackApplied = "Rejection sampling hit its cap, forcing a mismatch"
	LogMsgSpinFailed      = "Spin failed"
	LogMsgSpinRejected    = "Spin rejected"
	LogMsgServiceShutdown = "Slots service shutting down"
)

// Metric label values
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"

	RejectReasonInvalidBet          = "invalid_bet"
	RejectReasonInsufficientBalance = "insufficient_balance"
	RejectReasonMalformed           = "malformed"
	RejectReasonInternal            = "internal"
	RejectReasonShutdown            = "shutdown"
)
