package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// MockSlotsService mocks slots.Service
type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) Spin(ctx context.Context, req domain.SpinRequest) (*domain.SpinOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinOutcome), args.Error(1)
}

func (m *MockSlotsService) Replay(seed string, betAmount int64, winProbability float64) (*slots.ReplayResult, error) {
	args := m.Called(seed, betAmount, winProbability)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slots.ReplayResult), args.Error(1)
}

func (m *MockSlotsService) Paytable() *paytable.Paytable {
	args := m.Called()
	return args.Get(0).(*paytable.Paytable)
}

func (m *MockSlotsService) Stats(ctx context.Context) (domain.AggregateStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AggregateStats), args.Error(1)
}

func (m *MockSlotsService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockLedger mocks ledger.Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Balance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSpinLookup mocks SpinLookup
type MockSpinLookup struct {
	mock.Mock
}

func (m *MockSpinLookup) Get(spinID string) (*domain.SpinOutcome, error) {
	args := m.Called(spinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinOutcome), args.Error(1)
}

// MockPinger mocks Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func int64Ptr(i int64) *int64 { return &i }

func sampleOutcome() *domain.SpinOutcome {
	return &domain.SpinOutcome{
		SpinID:          "spin-1",
		UserID:          "alice",
		Symbols:         [domain.ReelCount]string{"cherry", "cherry", "cherry"},
		BetAmount:       10,
		Payout:          30,
		WinType:         strPtr("cherry"),
		NewBalance:      1020,
		CurrentRTP:      0.5,
		WinProbability:  0.3,
		MultiplierBoost: 1.0,
		Tier:            "low",
		TriggerType:     domain.TriggerNormal,
		Message:         "Triple Cherry! You won 30 (net +20).",
		Verification: domain.Verification{
			Seed:            "crypto-slot-2024-06-01-1000-10-alice-0",
			DrawHashes:      []string{"aa", "bb"},
			WinProbability:  0.3,
			BetAmount:       10,
			SpinSequence:    0,
			PaytableVersion: "v1",
			Forced:          true,
		},
	}
}
