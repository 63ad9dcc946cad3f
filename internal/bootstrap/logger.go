package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/FairSpin_Go/internal/config"
	"github.com/osse101/FairSpin_Go/internal/logger"
)

// SetupLogger initializes the default structured logger from configuration
// and logs the startup banner. A nil writer means stdout.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)
	l := logger.InitLoggerWithWriter(logCfg, w)

	l.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "format", logCfg.Format)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"stats_backend", cfg.StatsBackend)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"paytable_path", cfg.PaytablePath,
		"seed_prefix", cfg.SeedPrefix,
		"stats_key", cfg.StatsKey,
		"db_host", cfg.DBHost,
		"redis_addr", cfg.RedisAddr)

	return l
}
