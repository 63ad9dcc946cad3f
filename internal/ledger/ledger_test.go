package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSpin_Go/internal/domain"
)

func TestStatic_Balance(t *testing.T) {
	l := NewStatic(1000)

	balance, err := l.Balance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	_, err = l.Balance(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrMalformedRequest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Balance(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
