package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Request errors
	ErrMsgInvalidBet          = "invalid bet amount"
	ErrMsgInsufficientBalance = "insufficient balance"
	ErrMsgMalformedRequest    = "malformed request"

	// Engine errors
	ErrMsgInternalInvariant = "internal invariant violation"
	ErrMsgInvalidPaytable   = "invalid paytable"
	ErrMsgPaytableMismatch  = "paytable version mismatch"

	// Lookup errors
	ErrMsgSpinNotFound = "spin not found"

	// Storage errors
	ErrMsgStatsUnavailable = "stats store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidBet covers missing, non-numeric, fractional and non-positive bets.
	// Positive bets outside the configured range are clamped, not rejected.
	ErrInvalidBet = errors.New(ErrMsgInvalidBet)

	// ErrInsufficientBalance is returned when the balance cannot cover the clamped bet.
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)

	// ErrMalformedRequest is returned for unparsable payloads and missing fields.
	ErrMalformedRequest = errors.New(ErrMsgMalformedRequest)

	// ErrInternalInvariant is fatal for a single spin and never touches aggregate stats.
	ErrInternalInvariant = errors.New(ErrMsgInternalInvariant)

	ErrInvalidPaytable  = errors.New(ErrMsgInvalidPaytable)
	ErrPaytableMismatch = errors.New(ErrMsgPaytableMismatch)

	ErrSpinNotFound = errors.New(ErrMsgSpinNotFound)

	ErrStatsUnavailable = errors.New(ErrMsgStatsUnavailable)
)
