package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/go-redis/redis/v7"

	"github.com/osse101/FairSpin_Go/internal/config"
	"github.com/osse101/FairSpin_Go/internal/database"
	"github.com/osse101/FairSpin_Go/internal/database/postgres"
	"github.com/osse101/FairSpin_Go/internal/database/redis"
	"github.com/osse101/FairSpin_Go/internal/rtp"
)

// StatsBackend is the selected aggregate stats store plus whatever
// connection it owns
type StatsBackend struct {
	Name  string
	Store rtp.Store

	pool        database.Pool
	redisClient *goredis.Client
}

// InitializeStatsStore connects the backend named by cfg.StatsBackend.
// Postgres runs embedded migrations before the store is used.
func InitializeStatsStore(ctx context.Context, cfg *config.Config) (*StatsBackend, error) {
	var backend *StatsBackend

	switch cfg.StatsBackend {
	case config.StatsBackendMemory:
		backend = &StatsBackend{Name: cfg.StatsBackend, Store: rtp.NewMemoryStore()}

	case config.StatsBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		store, err := postgres.NewStatsStore(pool, cfg.StatsKey)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateStore, err)
		}
		backend = &StatsBackend{Name: cfg.StatsBackend, Store: store, pool: pool}

	case config.StatsBackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		backend = &StatsBackend{Name: cfg.StatsBackend, Store: redis.NewStatsStore(client, cfg.StatsKey), redisClient: client}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StatsBackend)
	}

	slog.Info(LogMsgStatsStoreReady, "backend", backend.Name, "key", cfg.StatsKey)
	return backend, nil
}

// Close releases the backend's connections
func (b *StatsBackend) Close() error {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redisClient != nil {
		return b.redisClient.Close()
	}
	return nil
}
