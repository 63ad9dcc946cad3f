package handler

// Stable error codes carried in every error body. Clients branch on these,
// never on the human-readable message.
const (
	CodeInvalidBet          = "INVALID_BET"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeMalformedRequest    = "MALFORMED_REQUEST"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodePaytableMismatch    = "PAYTABLE_MISMATCH"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgInvalidBetAmount    = "Bet amount must be a positive whole number"
	ErrMsgBalanceTooLow       = "Balance is too low for this bet"
	ErrMsgSpinNotFound        = "Spin not found. Verification records are kept for a limited time."
	ErrMsgPaytableMismatch    = "Spin was made against a different paytable version"
	ErrMsgStatsUnavailable    = "Statistics are temporarily unavailable"
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgServiceShuttingDown = "Server is shutting down. Please retry."
)

// Log messages
const (
	LogMsgSpinFailed       = "Spin request failed"
	LogMsgVerifyFailed     = "Verify request failed"
	LogMsgStatsFailed      = "Stats request failed"
	LogMsgLookupFailed     = "Spin lookup failed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgBalanceLookupErr = "Balance lookup failed"
)
