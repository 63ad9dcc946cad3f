package domain

import "time"

// ReelCount is the number of symbols in every outcome
const ReelCount = 3

// Trigger types reported with every outcome
const (
	TriggerNormal  = "normal"
	TriggerBigWin  = "big_win"
	TriggerJackpot = "jackpot"
)

// SpinRequest is what an external collaborator hands the engine.
// Balance is owned by the caller's ledger; the engine never persists it.
type SpinRequest struct {
	UserID    string
	BetAmount int64
	Balance   int64
}

// SpinOutcome represents the finalized result of one spin
type SpinOutcome struct {
	SpinID          string            `json:"spin_id"`
	UserID          string            `json:"user_id"`
	Symbols         [ReelCount]string `json:"symbols"`
	BetAmount       int64             `json:"bet_amount"`   // Clamped bet actually wagered
	Payout          int64             `json:"payout"`       // 0 on loss
	WinType         *string           `json:"win_type"`     // Matched symbol, nil on loss
	NewBalance      int64             `json:"new_balance"`  // balance - bet + payout
	CurrentRTP      float64           `json:"current_rtp"`  // Global ratio after this spin was recorded
	WinProbability  float64           `json:"win_probability"`
	MultiplierBoost float64           `json:"multiplier_boost"`
	Tier            string            `json:"tier"`
	TriggerType     string            `json:"trigger_type"` // "normal", "big_win", "jackpot"
	Message         string            `json:"message"`
	Verification    Verification      `json:"verification"`
	CreatedAt       time.Time         `json:"created_at"`
}

// IsWin reports whether the outcome paid anything
func (o *SpinOutcome) IsWin() bool {
	return o.Payout > 0
}

// Verification is everything a third party needs to recompute the symbols
type Verification struct {
	Seed            string   `json:"seed"`
	DrawHashes      []string `json:"draw_hashes"`
	WinProbability  float64  `json:"win_probability"`
	BetAmount       int64    `json:"bet_amount"`
	SpinSequence    int64    `json:"spin_sequence"`
	PaytableVersion string   `json:"paytable_version"`
	Forced          bool     `json:"forced"`
	FallbackApplied bool     `json:"fallback_applied"`
}
