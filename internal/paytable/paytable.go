package paytable

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/osse101/FairSpin_Go/internal/domain"
)

// Symbol is one reel symbol with its unforced draw weight and base multiplier
type Symbol struct {
	ID         string  `json:"id" yaml:"id"`
	Weight     int     `json:"weight" yaml:"weight"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// WinWeight is an entry of a tier's forced-win table
type WinWeight struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Tier maps an inclusive bet range to odds and payout adjustments.
// MaxBet of 0 means the tier has no upper bound.
type Tier struct {
	Name                  string      `json:"name" yaml:"name"`
	MinBet                int64       `json:"min_bet" yaml:"min_bet"`
	MaxBet                int64       `json:"max_bet" yaml:"max_bet"`
	ProbabilityMultiplier float64     `json:"probability_multiplier" yaml:"probability_multiplier"`
	MultiplierBoost       float64     `json:"multiplier_boost" yaml:"multiplier_boost"`
	WinWeights            []WinWeight `json:"win_weights" yaml:"win_weights"`
}

// Contains reports whether bet falls in the tier's range
func (t Tier) Contains(bet int64) bool {
	return bet >= t.MinBet && (t.MaxBet == 0 || bet <= t.MaxBet)
}

// RTPPolicy parameterizes the win-boost feedback loop
type RTPPolicy struct {
	Target             float64 `json:"target" yaml:"target"`
	BaseWinProbability float64 `json:"base_win_probability" yaml:"base_win_probability"`
	RaiseMargin        float64 `json:"raise_margin" yaml:"raise_margin"`
	LowerMargin        float64 `json:"lower_margin" yaml:"lower_margin"`
}

// Paytable is the versioned configuration every outcome is computed against
type Paytable struct {
	Version     string    `json:"version" yaml:"version"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	MinBet      int64     `json:"min_bet" yaml:"min_bet"`
	MaxBet      int64     `json:"max_bet" yaml:"max_bet"`
	RTP         RTPPolicy `json:"rtp" yaml:"rtp"`
	Symbols     []Symbol  `json:"symbols" yaml:"symbols"`
	Tiers       []Tier    `json:"tiers" yaml:"tiers"`

	symbolIndex map[string]int
}

// Validate checks the semantic rules the schema cannot express and
// prepares lookup indexes. It must be called before the table is used.
func (p *Paytable) Validate() error {
	if p.Version == "" {
		return invalid("version is required")
	}
	if p.MinBet < 1 || p.MaxBet < p.MinBet {
		return invalid("bet range [%d, %d] is empty or non-positive", p.MinBet, p.MaxBet)
	}
	if err := p.validatePolicy(); err != nil {
		return err
	}
	if err := p.validateSymbols(); err != nil {
		return err
	}
	if err := p.validateTiers(); err != nil {
		return err
	}

	p.symbolIndex = make(map[string]int, len(p.Symbols))
	for i, s := range p.Symbols {
		p.symbolIndex[s.ID] = i
	}
	return nil
}

func (p *Paytable) validatePolicy() error {
	r := p.RTP
	if r.Target <= 0 {
		return invalid("rtp target must be positive")
	}
	for name, v := range map[string]float64{
		"base_win_probability": r.BaseWinProbability,
		"raise_margin":         r.RaiseMargin,
		"lower_margin":         r.LowerMargin,
	} {
		if v < 0 || v > 1 {
			return invalid("rtp %s %.4f outside [0, 1]", name, v)
		}
	}
	return nil
}

func (p *Paytable) validateSymbols() error {
	if len(p.Symbols) < 2 {
		return invalid("at least two symbols are required for a losing triple to exist")
	}
	if dups := lo.FindDuplicatesBy(p.Symbols, func(s Symbol) string { return s.ID }); len(dups) > 0 {
		return invalid("duplicate symbol %q", dups[0].ID)
	}
	for _, s := range p.Symbols {
		if s.ID == "" {
			return invalid("symbol id is required")
		}
		if s.Weight < 1 {
			return invalid("symbol %q weight must be positive", s.ID)
		}
		if s.Multiplier <= 0 {
			return invalid("symbol %q multiplier must be positive", s.ID)
		}
	}
	return nil
}

func (p *Paytable) validateTiers() error {
	if len(p.Tiers) == 0 {
		return invalid("at least one tier is required")
	}

	known := lo.SliceToMap(p.Symbols, func(s Symbol) (string, bool) { return s.ID, true })

	sort.SliceStable(p.Tiers, func(i, j int) bool { return p.Tiers[i].MinBet < p.Tiers[j].MinBet })

	if p.Tiers[0].MinBet > p.MinBet {
		return invalid("tier %q starts at %d, above min bet %d", p.Tiers[0].Name, p.Tiers[0].MinBet, p.MinBet)
	}

	for i, t := range p.Tiers {
		if t.MaxBet != 0 && t.MaxBet < t.MinBet {
			return invalid("tier %q range [%d, %d] is empty", t.Name, t.MinBet, t.MaxBet)
		}
		if t.ProbabilityMultiplier <= 0 || t.MultiplierBoost <= 0 {
			return invalid("tier %q multipliers must be positive", t.Name)
		}
		if len(t.WinWeights) == 0 {
			return invalid("tier %q has no win weights", t.Name)
		}
		for _, w := range t.WinWeights {
			if !known[w.Symbol] {
				return invalid("tier %q references unknown symbol %q", t.Name, w.Symbol)
			}
			if w.Weight < 1 {
				return invalid("tier %q weight for %q must be positive", t.Name, w.Symbol)
			}
		}

		if i == 0 {
			continue
		}
		prev := p.Tiers[i-1]
		if prev.MaxBet == 0 {
			return invalid("tier %q follows unbounded tier %q", t.Name, prev.Name)
		}
		if t.MinBet != prev.MaxBet+1 {
			return invalid("tier %q must start at %d to follow %q", t.Name, prev.MaxBet+1, prev.Name)
		}
		// Larger bets never get worse odds or smaller multipliers
		if t.ProbabilityMultiplier < prev.ProbabilityMultiplier || t.MultiplierBoost < prev.MultiplierBoost {
			return invalid("tier %q adjustments must not decrease relative to %q", t.Name, prev.Name)
		}
	}

	last := p.Tiers[len(p.Tiers)-1]
	if last.MaxBet != 0 && last.MaxBet < p.MaxBet {
		return invalid("tiers end at %d, below max bet %d", last.MaxBet, p.MaxBet)
	}
	return nil
}

// Clamp forces a positive bet into [MinBet, MaxBet]
func (p *Paytable) Clamp(bet int64) int64 {
	if bet < p.MinBet {
		return p.MinBet
	}
	if bet > p.MaxBet {
		return p.MaxBet
	}
	return bet
}

// TierFor returns the tier covering bet
func (p *Paytable) TierFor(bet int64) (Tier, error) {
	for _, t := range p.Tiers {
		if t.Contains(bet) {
			return t, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: no tier covers bet %d", domain.ErrInternalInvariant, bet)
}

// Symbol looks up a symbol by id
func (p *Paytable) Symbol(id string) (Symbol, bool) {
	i, ok := p.symbolIndex[id]
	if !ok {
		return Symbol{}, false
	}
	return p.Symbols[i], true
}

// NextSymbol returns the id following id in table order, wrapping around.
// Used to break an accidental match deterministically.
func (p *Paytable) NextSymbol(id string) string {
	i, ok := p.symbolIndex[id]
	if !ok {
		return p.Symbols[0].ID
	}
	return p.Symbols[(i+1)%len(p.Symbols)].ID
}

// PayoutMultiplier is round(baseMultiplier * boost), the whole-number factor applied to the bet
func (p *Paytable) PayoutMultiplier(symbol string, boost float64) (int64, error) {
	s, ok := p.Symbol(symbol)
	if !ok {
		return 0, fmt.Errorf("%w: unknown symbol %q", domain.ErrInternalInvariant, symbol)
	}
	return int64(math.Round(s.Multiplier * boost)), nil
}

// MaxPayoutMultiplier bounds any payout: payout <= bet * MaxPayoutMultiplier()
func (p *Paytable) MaxPayoutMultiplier() int64 {
	maxBoost := lo.MaxBy(p.Tiers, func(a, b Tier) bool { return a.MultiplierBoost > b.MultiplierBoost }).MultiplierBoost
	best := lo.MaxBy(p.Symbols, func(a, b Symbol) bool { return a.Multiplier > b.Multiplier })
	return int64(math.Round(best.Multiplier * maxBoost))
}

// JackpotSymbol is the symbol with the highest base multiplier
func (p *Paytable) JackpotSymbol() string {
	return lo.MaxBy(p.Symbols, func(a, b Symbol) bool { return a.Multiplier > b.Multiplier }).ID
}

// Fingerprint is a SHA-256 over the canonical JSON encoding, so audits can
// tell two tables with the same version string apart
func (p *Paytable) Fingerprint() string {
	raw, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, fmt.Sprintf(format, args...))
}
