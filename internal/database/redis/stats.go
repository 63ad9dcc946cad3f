package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/go-redis/redis/v7"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/metrics"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

const (
	keyPrefix = "fairspin:rtp_stats:"

	fieldTotalWagered = "total_wagered"
	fieldTotalPaid    = "total_paid"
	fieldSpinCount    = "spin_count"

	// MaxUpdateAttempts bounds optimistic retries when other writers keep
	// touching the hash between WATCH and EXEC
	MaxUpdateAttempts = 50

	backendLabel = "redis"
)

// StatsStore keeps AggregateStats in a Redis hash. Update uses WATCH/MULTI,
// so the UpdateFunc may run more than once under contention.
type StatsStore struct {
	client *goredis.Client
	key    string
}

var _ rtp.Store = (*StatsStore)(nil)

// NewClient builds a client and verifies the server answers
func NewClient(addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewStatsStore creates a store for the aggregate hash named key
func NewStatsStore(client *goredis.Client, key string) *StatsStore {
	return &StatsStore{client: client, key: keyPrefix + key}
}

func (s *StatsStore) Snapshot(ctx context.Context) (domain.AggregateStats, error) {
	fields, err := s.client.WithContext(ctx).HGetAll(s.key).Result()
	if err != nil {
		return domain.AggregateStats{}, fmt.Errorf("failed to read stats: %w", err)
	}
	return parseStats(fields)
}

func (s *StatsStore) Update(ctx context.Context, fn rtp.UpdateFunc) (domain.AggregateStats, error) {
	client := s.client.WithContext(ctx)

	for attempt := 0; attempt < MaxUpdateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.AggregateStats{}, err
		}

		var result domain.AggregateStats
		err := client.Watch(func(tx *goredis.Tx) error {
			fields, err := tx.HGetAll(s.key).Result()
			if err != nil {
				return fmt.Errorf("failed to read stats: %w", err)
			}
			current, err := parseStats(fields)
			if err != nil {
				return err
			}

			delta, err := fn(current)
			if err != nil {
				return err
			}

			// EXEC fails with TxFailedErr if the hash changed since WATCH
			_, err = tx.TxPipelined(func(pipe goredis.Pipeliner) error {
				pipe.HIncrBy(s.key, fieldTotalWagered, delta.Wagered)
				pipe.HIncrBy(s.key, fieldTotalPaid, delta.Paid)
				pipe.HIncrBy(s.key, fieldSpinCount, delta.Spins)
				return nil
			})
			if err != nil {
				return err
			}

			result = current.Apply(delta)
			return nil
		}, s.key)

		if err == nil {
			return result, nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return domain.AggregateStats{}, err
		}
		metrics.StatsStoreRetries.WithLabelValues(backendLabel).Inc()
	}

	return domain.AggregateStats{}, fmt.Errorf("%w: stats update lost %d races in a row", domain.ErrStatsUnavailable, MaxUpdateAttempts)
}

func (s *StatsStore) Ping(ctx context.Context) error {
	return s.client.WithContext(ctx).Ping().Err()
}

func parseStats(fields map[string]string) (domain.AggregateStats, error) {
	var stats domain.AggregateStats
	for name, dst := range map[string]*int64{
		fieldTotalWagered: &stats.TotalWagered,
		fieldTotalPaid:    &stats.TotalPaid,
		fieldSpinCount:    &stats.SpinCount,
	} {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.AggregateStats{}, fmt.Errorf("%w: field %s holds %q", domain.ErrInternalInvariant, name, raw)
		}
		*dst = v
	}
	return stats, nil
}
