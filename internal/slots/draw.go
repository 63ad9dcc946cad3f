package slots

import (
	"fmt"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/paytable"
)

// reelSet holds the selectors derived from one paytable
type reelSet struct {
	table *paytable.Paytable
	base  *WeightedSelector
	tiers map[string]*WeightedSelector
}

func newReelSet(table *paytable.Paytable) (*reelSet, error) {
	baseEntries := make([]WeightedEntry, 0, len(table.Symbols))
	for _, s := range table.Symbols {
		baseEntries = append(baseEntries, WeightedEntry{Symbol: s.ID, Weight: s.Weight})
	}
	base, err := NewWeightedSelector(baseEntries)
	if err != nil {
		return nil, fmt.Errorf("base reel: %w", err)
	}

	tiers := make(map[string]*WeightedSelector, len(table.Tiers))
	for _, t := range table.Tiers {
		entries := make([]WeightedEntry, 0, len(t.WinWeights))
		for _, w := range t.WinWeights {
			entries = append(entries, WeightedEntry{Symbol: w.Symbol, Weight: w.Weight})
		}
		sel, err := NewWeightedSelector(entries)
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", t.Name, err)
		}
		tiers[t.Name] = sel
	}

	return &reelSet{table: table, base: base, tiers: tiers}, nil
}

// drawResult is the symbol-level result of one spin, before payout
type drawResult struct {
	symbols  [domain.ReelCount]string
	forced   bool
	fallback bool
	attempts int
	hashes   []string
}

// draw consumes rng in the published order:
//  1. one draw decides the forced win
//  2. forced: one draw from the tier's win table, repeated on every reel
//  3. otherwise: triples of base draws until one does not match, capped at
//     MaxRejectionAttempts, after which the last reel takes the next symbol
//     in table order without consuming a draw
func (rs *reelSet) draw(rng *fairness.HashChainRNG, tier paytable.Tier, winProbability float64) (drawResult, error) {
	var res drawResult

	if rng.Next() < winProbability {
		sel, ok := rs.tiers[tier.Name]
		if !ok {
			return res, fmt.Errorf("%w: no win table for tier %q", domain.ErrInternalInvariant, tier.Name)
		}
		sym := sel.Pick(rng)
		res.symbols = [domain.ReelCount]string{sym, sym, sym}
		res.forced = true
		res.hashes = rng.Draws()
		return res, nil
	}

	for res.attempts < MaxRejectionAttempts {
		res.attempts++
		for i := range res.symbols {
			res.symbols[i] = rs.base.Pick(rng)
		}
		if !allMatch(res.symbols) {
			break
		}
	}

	if allMatch(res.symbols) {
		last := domain.ReelCount - 1
		res.symbols[last] = rs.table.NextSymbol(res.symbols[last])
		res.fallback = true
	}

	res.hashes = rng.Draws()
	return res, nil
}

// payout is bet * round(baseMultiplier * boost) for a full match, else 0
func (rs *reelSet) payout(symbols [domain.ReelCount]string, bet int64, boost float64) (int64, error) {
	if !allMatch(symbols) {
		return 0, nil
	}
	m, err := rs.table.PayoutMultiplier(symbols[0], boost)
	if err != nil {
		return 0, err
	}
	return bet * m, nil
}

func allMatch(symbols [domain.ReelCount]string) bool {
	for _, s := range symbols[1:] {
		if s != symbols[0] {
			return false
		}
	}
	return true
}
