package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	Environment     string
	ServiceName     string
	Version         string
	ShutdownTimeout time.Duration

	// Engine
	PaytablePath   string // Empty uses the embedded default table
	SeedPrefix     string
	DefaultBalance int64 // Balance assumed when a request omits one

	// Aggregate stats store
	StatsBackend string
	StatsKey     string

	// Postgres
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Recent-spin verification cache
	AuditCacheSize int
	AuditCacheTTL  time.Duration

	// Background gauge refresh; zero disables it
	StatsRefreshInterval time.Duration

	// HTTP edge
	CORSAllowedOrigins []string
	TrustedProxies     []string
	RateLimitPerWindow int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "text")),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", "dev"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		PaytablePath:   getEnv("PAYTABLE_PATH", ""),
		SeedPrefix:     getEnv("SEED_PREFIX", DefaultSeedPrefix),
		DefaultBalance: int64(getEnvAsInt("DEFAULT_BALANCE", DefaultBalance)),

		StatsBackend: strings.ToLower(getEnv("STATS_BACKEND", StatsBackendMemory)),
		StatsKey:     getEnv("STATS_KEY", DefaultStatsKey),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "fairspin"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		AuditCacheSize: getEnvAsInt("AUDIT_CACHE_SIZE", DefaultAuditCacheSize),
		AuditCacheTTL:  getEnvAsDuration("AUDIT_CACHE_TTL", DefaultAuditCacheTTL),

		StatsRefreshInterval: getEnvAsDuration("STATS_REFRESH_INTERVAL", DefaultStatsRefreshInterval),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
		RateLimitPerWindow: getEnvAsInt("RATE_LIMIT_PER_WINDOW", DefaultRateLimitPerWindow),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that parsing alone cannot catch
func (c *Config) Validate() error {
	switch c.StatsBackend {
	case StatsBackendMemory, StatsBackendPostgres, StatsBackendRedis:
	default:
		return fmt.Errorf("invalid STATS_BACKEND %q: expected %s, %s or %s",
			c.StatsBackend, StatsBackendMemory, StatsBackendPostgres, StatsBackendRedis)
	}
	if c.SeedPrefix == "" {
		return fmt.Errorf("SEED_PREFIX must not be empty")
	}
	if c.DefaultBalance < 0 {
		return fmt.Errorf("DEFAULT_BALANCE must not be negative, got %d", c.DefaultBalance)
	}
	if c.AuditCacheSize < 1 {
		return fmt.Errorf("AUDIT_CACHE_SIZE must be positive, got %d", c.AuditCacheSize)
	}
	if c.StatsRefreshInterval < 0 {
		return fmt.Errorf("STATS_REFRESH_INTERVAL must not be negative, got %s", c.StatsRefreshInterval)
	}
	if c.RateLimitPerWindow < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_WINDOW must be positive, got %d", c.RateLimitPerWindow)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default for unset, empty or non-integer values
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts time.ParseDuration syntax only ("30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string, defaultValue []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
