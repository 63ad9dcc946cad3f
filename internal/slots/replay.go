package slots

import (
	"fmt"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/paytable"
)

// ReplayResult is what an independent verifier derives from a disclosed seed
type ReplayResult struct {
	Symbols         [domain.ReelCount]string `json:"symbols"`
	DrawHashes      []string                 `json:"draw_hashes"`
	Payout          int64                    `json:"payout"`
	WinType         *string                  `json:"win_type"`
	Tier            string                   `json:"tier"`
	Forced          bool                     `json:"forced"`
	FallbackApplied bool                     `json:"fallback_applied"`
	PaytableVersion string                   `json:"paytable_version"`
}

// Replay re-executes the draw sequence for seed against table. betAmount must
// be the clamped bet recorded with the spin and winProbability the disclosed
// per-spin decision.
func Replay(table *paytable.Paytable, seed string, betAmount int64, winProbability float64) (*ReplayResult, error) {
	reels, err := newReelSet(table)
	if err != nil {
		return nil, err
	}
	return replayWith(reels, seed, betAmount, winProbability)
}

func replayWith(reels *reelSet, seed string, betAmount int64, winProbability float64) (*ReplayResult, error) {
	table := reels.table

	if seed == "" {
		return nil, fmt.Errorf("%w: seed is required", domain.ErrMalformedRequest)
	}
	if betAmount < table.MinBet || betAmount > table.MaxBet {
		return nil, fmt.Errorf("%w: bet %d outside [%d, %d]", domain.ErrInvalidBet, betAmount, table.MinBet, table.MaxBet)
	}
	if winProbability < 0 || winProbability > 1 {
		return nil, fmt.Errorf("%w: win probability %.6f outside [0, 1]", domain.ErrMalformedRequest, winProbability)
	}

	tier, err := table.TierFor(betAmount)
	if err != nil {
		return nil, err
	}

	res, err := reels.draw(fairness.NewHashChainRNG(seed), tier, winProbability)
	if err != nil {
		return nil, err
	}

	payout, err := reels.payout(res.symbols, betAmount, tier.MultiplierBoost)
	if err != nil {
		return nil, err
	}

	var winType *string
	if payout > 0 {
		sym := res.symbols[0]
		winType = &sym
	}

	return &ReplayResult{
		Symbols:         res.symbols,
		DrawHashes:      res.hashes,
		Payout:          payout,
		WinType:         winType,
		Tier:            tier.Name,
		Forced:          res.forced,
		FallbackApplied: res.fallback,
		PaytableVersion: table.Version,
	}, nil
}
