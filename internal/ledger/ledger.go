package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/FairSpin_Go/internal/domain"
)

// Ledger resolves a player's balance when the caller does not supply one.
// The engine never writes balances back; settlement belongs to the caller.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
}

// Static reports the same balance for every player. It stands in for an
// external wallet service in local and demo deployments.
type Static struct {
	balance int64
}

// NewStatic creates a ledger reporting balance for everyone
func NewStatic(balance int64) *Static {
	return &Static{balance: balance}
}

func (s *Static) Balance(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, fmt.Errorf("%w: user id is required", domain.ErrMalformedRequest)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.balance, nil
}
