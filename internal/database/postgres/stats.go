package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

// StatsStore keeps AggregateStats in one rtp_stats row. Update locks the row
// with SELECT ... FOR UPDATE inside a transaction, so concurrent spins from
// any number of service instances are serialized by Postgres.
type StatsStore struct {
	pool      *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
	key       string
}

var _ rtp.Store = (*StatsStore)(nil)

// NewStatsStore creates a store for the aggregate row named key
func NewStatsStore(pool *pgxpool.Pool, key string) (*StatsStore, error) {
	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateManager, err)
	}

	return &StatsStore{
		pool:      pool,
		txManager: m,
		getter:    trmpgx.DefaultCtxGetter,
		key:       key,
	}, nil
}

func (s *StatsStore) Snapshot(ctx context.Context) (domain.AggregateStats, error) {
	query := sq.Select(colTotalWagered, colTotalPaid, colSpinCount).
		From(statsTable).
		Where(sq.Eq{colStatsKey: s.key}).
		PlaceholderFormat(sq.Dollar)

	stats, err := s.scanStats(ctx, s.getter.DefaultTrOrDB(ctx, s.pool), query)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AggregateStats{}, nil
	}
	if err != nil {
		return domain.AggregateStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToReadStats, err)
	}
	return stats, nil
}

func (s *StatsStore) Update(ctx context.Context, fn rtp.UpdateFunc) (domain.AggregateStats, error) {
	var result domain.AggregateStats

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		tr := s.getter.DefaultTrOrDB(ctx, s.pool)

		if err := s.ensureRow(ctx, tr); err != nil {
			return err
		}

		current, err := s.lockRow(ctx, tr)
		if err != nil {
			return err
		}

		delta, err := fn(current)
		if err != nil {
			return err
		}

		if !delta.IsZero() {
			if err := s.applyDelta(ctx, tr, delta); err != nil {
				return err
			}
		}

		result = current.Apply(delta)
		return nil
	})
	if err != nil {
		return domain.AggregateStats{}, err
	}

	return result, nil
}

func (s *StatsStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ensureRow creates the zero row the first time a key is used
func (s *StatsStore) ensureRow(ctx context.Context, tr trmpgx.Tr) error {
	query := sq.Insert(statsTable).
		Columns(colStatsKey, colTotalWagered, colTotalPaid, colSpinCount).
		Values(s.key, 0, 0, 0).
		Suffix("ON CONFLICT (" + colStatsKey + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInitStatsRow, err)
	}
	return nil
}

func (s *StatsStore) lockRow(ctx context.Context, tr trmpgx.Tr) (domain.AggregateStats, error) {
	query := sq.Select(colTotalWagered, colTotalPaid, colSpinCount).
		From(statsTable).
		Where(sq.Eq{colStatsKey: s.key}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	stats, err := s.scanStats(ctx, tr, query)
	if err != nil {
		return domain.AggregateStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToLockStatsRow, err)
	}
	return stats, nil
}

func (s *StatsStore) applyDelta(ctx context.Context, tr trmpgx.Tr, d domain.StatsDelta) error {
	query := sq.Update(statsTable).
		Set(colTotalWagered, sq.Expr(colTotalWagered+" + ?", d.Wagered)).
		Set(colTotalPaid, sq.Expr(colTotalPaid+" + ?", d.Paid)).
		Set(colSpinCount, sq.Expr(colSpinCount+" + ?", d.Spins)).
		Set(colUpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{colStatsKey: s.key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyStatsDelta, err)
	}
	return nil
}

func (s *StatsStore) scanStats(ctx context.Context, tr trmpgx.Tr, query sq.SelectBuilder) (domain.AggregateStats, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return domain.AggregateStats{}, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	var stats domain.AggregateStats
	err = tr.QueryRow(ctx, sqlStr, args...).Scan(&stats.TotalWagered, &stats.TotalPaid, &stats.SpinCount)
	return stats, err
}
