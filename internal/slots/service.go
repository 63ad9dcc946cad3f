package slots

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/logger"
	"github.com/osse101/FairSpin_Go/internal/metrics"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

// ErrShuttingDown is returned for spins that arrive after Shutdown was called
var ErrShuttingDown = errors.New("slots service is shutting down")

// Recorder receives every committed outcome, e.g. for later verification lookups
type Recorder interface {
	Record(outcome *domain.SpinOutcome)
}

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinOutcome, error)
	Replay(seed string, betAmount int64, winProbability float64) (*ReplayResult, error)
	Paytable() *paytable.Paytable
	Stats(ctx context.Context) (domain.AggregateStats, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	controller *rtp.Controller
	deriver    *fairness.SeedDeriver
	recorder   Recorder
	reels      *reelSet
	jackpot    string

	now   func() time.Time // Injectable for testing
	newID func() string

	wg           sync.WaitGroup
	mu           sync.RWMutex
	shuttingDown bool
}

// NewService creates a slots engine around a controller and its paytable.
// recorder may be nil.
func NewService(controller *rtp.Controller, deriver *fairness.SeedDeriver, recorder Recorder) (Service, error) {
	reels, err := newReelSet(controller.Table())
	if err != nil {
		return nil, fmt.Errorf("failed to build reels: %w", err)
	}

	return &service{
		controller: controller,
		deriver:    deriver,
		recorder:   recorder,
		reels:      reels,
		jackpot:    controller.Table().JackpotSymbol(),
		now:        time.Now,
		newID:      uuid.NewString,
	}, nil
}

// Spin validates the request, then derives the seed, draws the symbols and
// records the payout inside one atomic store update. Rejected requests leave
// the aggregate untouched.
func (s *service) Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinOutcome, error) {
	log := logger.FromContext(ctx)

	if !s.enter() {
		metrics.SpinsRejected.WithLabelValues(RejectReasonShutdown).Inc()
		return nil, ErrShuttingDown
	}
	defer s.wg.Done()

	bet, err := s.validate(req)
	if err != nil {
		log.Info(LogMsgSpinRejected, "user_id", req.UserID, "bet_amount", req.BetAmount, "error", err)
		metrics.SpinsRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}
	if bet != req.BetAmount {
		log.Debug(LogMsgBetClamped, "requested", req.BetAmount, "clamped", bet)
	}

	table := s.controller.Table()
	spunAt := s.now().UTC()

	var (
		res      drawResult
		decision rtp.Decision
		seed     string
		sequence int64
		payout   int64
	)

	stats, err := s.controller.Spin(ctx, bet, func(current domain.AggregateStats, d rtp.Decision) (int64, error) {
		sequence = current.SpinCount
		seed = s.deriver.Derive(fairness.SeedMaterial{
			Date:         spunAt,
			UserID:       req.UserID,
			Balance:      req.Balance,
			BetAmount:    bet,
			SpinSequence: sequence,
		})

		r, err := s.reels.draw(fairness.NewHashChainRNG(seed), d.Tier, d.WinProbability)
		if err != nil {
			return 0, err
		}

		p, err := s.reels.payout(r.symbols, bet, d.MultiplierBoost)
		if err != nil {
			return 0, err
		}

		res, decision, payout = r, d, p
		return p, nil
	})
	if err != nil {
		log.Error(LogMsgSpinFailed, "user_id", req.UserID, "bet_amount", bet, "error", err)
		metrics.SpinsRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, fmt.Errorf("spin failed: %w", err)
	}

	log.Debug(LogMsgSpinDecided,
		"tier", decision.Tier.Name,
		"win_probability", decision.WinProbability,
		"forced", res.forced,
		"attempts", res.attempts,
		"spin_sequence", sequence)

	if res.fallback {
		log.Warn(LogMsgFallbackApplied, "seed", seed, "attempts", res.attempts)
	}

	outcome := s.buildOutcome(req, bet, payout, res, decision, stats, seed, sequence, spunAt, table.Version)

	if outcome.IsWin() {
		log.Info(LogMsgSpinWon,
			"user_id", req.UserID,
			"win_type", *outcome.WinType,
			"payout", payout,
			"trigger_type", outcome.TriggerType)
	}

	s.observe(outcome, res, stats)

	if s.recorder != nil {
		s.recorder.Record(outcome)
	}

	return outcome, nil
}

// validate returns the clamped bet or a rejection. Nothing is mutated.
func (s *service) validate(req domain.SpinRequest) (int64, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return 0, fmt.Errorf("%w: user id is required", domain.ErrMalformedRequest)
	}
	if req.BetAmount <= 0 {
		return 0, fmt.Errorf("%w: bet must be positive, got %d", domain.ErrInvalidBet, req.BetAmount)
	}

	table := s.controller.Table()
	bet := table.Clamp(req.BetAmount)
	if req.Balance < bet {
		return 0, fmt.Errorf("%w: balance %d is below bet %d", domain.ErrInsufficientBalance, req.Balance, bet)
	}
	if !balanceFits(req.Balance, bet, table.MaxPayoutMultiplier()) {
		return 0, fmt.Errorf("%w: balance %d is too large to settle a win", domain.ErrMalformedRequest, req.Balance)
	}
	return bet, nil
}

// balanceFits reports whether balance - bet + bet*maxMultiplier stays within int64
func balanceFits(balance, bet, maxMultiplier int64) bool {
	if maxMultiplier > 0 && bet > math.MaxInt64/maxMultiplier {
		return false
	}
	return balance-bet <= math.MaxInt64-bet*maxMultiplier
}

func (s *service) buildOutcome(
	req domain.SpinRequest,
	bet, payout int64,
	res drawResult,
	d rtp.Decision,
	stats domain.AggregateStats,
	seed string,
	sequence int64,
	spunAt time.Time,
	version string,
) *domain.SpinOutcome {
	var winType *string
	if payout > 0 {
		sym := res.symbols[0]
		winType = &sym
	}

	trigger := determineTriggerType(winType, s.jackpot, bet, payout)

	return &domain.SpinOutcome{
		SpinID:          s.newID(),
		UserID:          req.UserID,
		Symbols:         res.symbols,
		BetAmount:       bet,
		Payout:          payout,
		WinType:         winType,
		NewBalance:      req.Balance - bet + payout,
		CurrentRTP:      stats.RTP(),
		WinProbability:  d.WinProbability,
		MultiplierBoost: d.MultiplierBoost,
		Tier:            d.Tier.Name,
		TriggerType:     trigger,
		Message:         formatMessage(winType, bet, payout, trigger),
		Verification: domain.Verification{
			Seed:            seed,
			DrawHashes:      res.hashes,
			WinProbability:  d.WinProbability,
			BetAmount:       bet,
			SpinSequence:    sequence,
			PaytableVersion: version,
			Forced:          res.forced,
			FallbackApplied: res.fallback,
		},
		CreatedAt: spunAt,
	}
}

func (s *service) observe(outcome *domain.SpinOutcome, res drawResult, stats domain.AggregateStats) {
	result := OutcomeLoss
	if outcome.IsWin() {
		result = OutcomeWin
	}
	metrics.SpinsTotal.WithLabelValues(outcome.Tier, result, outcome.TriggerType).Inc()
	metrics.AmountWagered.Add(float64(outcome.BetAmount))
	metrics.AmountPaid.Add(float64(outcome.Payout))
	metrics.CurrentRTP.Set(stats.RTP())
	metrics.WinProbability.WithLabelValues(outcome.Tier).Set(outcome.WinProbability)
	if !res.forced {
		metrics.RejectionAttempts.Observe(float64(res.attempts))
	}
	if res.fallback {
		metrics.RejectionFallbacks.Inc()
	}
}

// Replay recomputes a disclosed spin
func (s *service) Replay(seed string, betAmount int64, winProbability float64) (*ReplayResult, error) {
	return replayWith(s.reels, seed, betAmount, winProbability)
}

// Paytable returns the table outcomes are computed against
func (s *service) Paytable() *paytable.Paytable {
	return s.controller.Table()
}

// Stats returns the aggregate counters
func (s *service) Stats(ctx context.Context) (domain.AggregateStats, error) {
	return s.controller.Stats(ctx)
}

// enter registers an in-flight spin unless shutdown has begun
func (s *service) enter() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.shuttingDown {
		return false
	}
	s.wg.Add(1)
	return true
}

// Shutdown stops accepting spins and waits for in-flight ones to finish
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServiceShutdown)

	s.mu.Lock()
	s.shuttingDown = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidBet):
		return RejectReasonInvalidBet
	case errors.Is(err, domain.ErrInsufficientBalance):
		return RejectReasonInsufficientBalance
	case errors.Is(err, domain.ErrMalformedRequest):
		return RejectReasonMalformed
	default:
		return RejectReasonInternal
	}
}
