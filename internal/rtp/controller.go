package rtp

import (
	"context"
	"fmt"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/paytable"
)

// Decision is the per-spin output of the feedback policy
type Decision struct {
	WinProbability  float64
	MultiplierBoost float64
	Tier            paytable.Tier
	CurrentRTP      float64
	BelowTarget     bool
}

// SpinFunc finalizes one spin given the stats it was decided against and
// returns the payout to record
type SpinFunc func(stats domain.AggregateStats, d Decision) (payout int64, err error)

// Controller steers win probability toward the paytable's target RTP
type Controller struct {
	store Store
	table *paytable.Paytable
}

// NewController wires a store to a validated paytable
func NewController(store Store, table *paytable.Paytable) *Controller {
	return &Controller{store: store, table: table}
}

// Table returns the paytable decisions are made against
func (c *Controller) Table() *paytable.Paytable {
	return c.table
}

// Evaluate is the pure policy: no I/O, no mutation
func (c *Controller) Evaluate(stats domain.AggregateStats, bet int64) (Decision, error) {
	tier, err := c.table.TierFor(bet)
	if err != nil {
		return Decision{}, err
	}

	policy := c.table.RTP
	current := stats.RTP()
	below := current < policy.Target

	base := policy.BaseWinProbability - policy.LowerMargin
	if below {
		base = policy.BaseWinProbability + policy.RaiseMargin
	}

	return Decision{
		WinProbability:  clampProbability(base * tier.ProbabilityMultiplier),
		MultiplierBoost: tier.MultiplierBoost,
		Tier:            tier,
		CurrentRTP:      current,
		BelowTarget:     below,
	}, nil
}

// Decide evaluates the policy against the store's current stats without mutating them
func (c *Controller) Decide(ctx context.Context, bet int64) (Decision, error) {
	stats, err := c.store.Snapshot(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %v", domain.ErrStatsUnavailable, err)
	}
	return c.Evaluate(stats, bet)
}

// Record adds one finalized spin to the aggregates
func (c *Controller) Record(ctx context.Context, bet, payout int64) (domain.AggregateStats, error) {
	if bet < 0 || payout < 0 {
		return domain.AggregateStats{}, fmt.Errorf("%w: negative bet %d or payout %d", domain.ErrInternalInvariant, bet, payout)
	}
	stats, err := c.store.Update(ctx, func(domain.AggregateStats) (domain.StatsDelta, error) {
		return domain.StatsDelta{Wagered: bet, Paid: payout, Spins: 1}, nil
	})
	if err != nil {
		return stats, fmt.Errorf("failed to record spin: %w", err)
	}
	return stats, nil
}

// Spin decides and records as one atomic unit. fn sees the exact stats the
// decision was based on; its payout is recorded before any other spin can
// read the aggregates. When fn fails nothing is recorded.
func (c *Controller) Spin(ctx context.Context, bet int64, fn SpinFunc) (domain.AggregateStats, error) {
	return c.store.Update(ctx, func(current domain.AggregateStats) (domain.StatsDelta, error) {
		d, err := c.Evaluate(current, bet)
		if err != nil {
			return domain.StatsDelta{}, err
		}

		payout, err := fn(current, d)
		if err != nil {
			return domain.StatsDelta{}, err
		}
		if payout < 0 {
			return domain.StatsDelta{}, fmt.Errorf("%w: negative payout %d", domain.ErrInternalInvariant, payout)
		}

		return domain.StatsDelta{Wagered: bet, Paid: payout, Spins: 1}, nil
	})
}

// Stats returns the current aggregates
func (c *Controller) Stats(ctx context.Context) (domain.AggregateStats, error) {
	stats, err := c.store.Snapshot(ctx)
	if err != nil {
		return stats, fmt.Errorf("%w: %v", domain.ErrStatsUnavailable, err)
	}
	return stats, nil
}

// Ping reports whether the backing store is reachable
func (c *Controller) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
