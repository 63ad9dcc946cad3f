package slots

import (
	"fmt"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
)

// WeightedEntry is one (symbol, weight) pair
type WeightedEntry struct {
	Symbol string
	Weight int
}

// WeightedSelector draws symbols with probability proportional to weight
type WeightedSelector struct {
	entries []WeightedEntry
	total   int
}

// NewWeightedSelector requires a non-empty list of strictly positive weights
func NewWeightedSelector(entries []WeightedEntry) (*WeightedSelector, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: selector needs at least one symbol", domain.ErrInternalInvariant)
	}

	total := 0
	for _, e := range entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: symbol %q has non-positive weight %d", domain.ErrInternalInvariant, e.Symbol, e.Weight)
		}
		total += e.Weight
	}

	owned := make([]WeightedEntry, len(entries))
	copy(owned, entries)
	return &WeightedSelector{entries: owned, total: total}, nil
}

// Pick consumes exactly one draw from src
func (s *WeightedSelector) Pick(src fairness.Source) string {
	r := src.Next() * float64(s.total)
	for _, e := range s.entries {
		r -= float64(e.Weight)
		if r <= 0 {
			return e.Symbol
		}
	}
	// Only reachable through float rounding at the upper boundary
	return s.entries[0].Symbol
}

// TotalWeight returns the sum of all weights
func (s *WeightedSelector) TotalWeight() int {
	return s.total
}

// Probability returns weight/total for symbol, 0 if absent
func (s *WeightedSelector) Probability(symbol string) float64 {
	for _, e := range s.entries {
		if e.Symbol == symbol {
			return float64(e.Weight) / float64(s.total)
		}
	}
	return 0
}
