package config

import "time"

// Stats store backends
const (
	StatsBackendMemory   = "memory"
	StatsBackendPostgres = "postgres"
	StatsBackendRedis    = "redis"
)

// Defaults applied when a variable is unset or unparsable
const (
	DefaultPort               = 8080
	DefaultServiceName        = "fair-spin"
	DefaultSeedPrefix         = "crypto-slot"
	DefaultBalance            = 1000
	DefaultStatsKey           = "global"
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleTime  = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultAuditCacheSize     = 10000
	DefaultAuditCacheTTL      = 24 * time.Hour
	DefaultShutdownTimeout    = 30 * time.Second
	DefaultRateLimitPerWindow = 1000

	DefaultStatsRefreshInterval = 15 * time.Second
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
)
