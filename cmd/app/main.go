package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/FairSpin_Go/internal/audit"
	"github.com/osse101/FairSpin_Go/internal/bootstrap"
	"github.com/osse101/FairSpin_Go/internal/config"
	"github.com/osse101/FairSpin_Go/internal/fairness"
	"github.com/osse101/FairSpin_Go/internal/ledger"
	"github.com/osse101/FairSpin_Go/internal/paytable"
	"github.com/osse101/FairSpin_Go/internal/rtp"
	"github.com/osse101/FairSpin_Go/internal/server"
	"github.com/osse101/FairSpin_Go/internal/slots"
)

// @title FairSpin API
// @version 1.0
// @description Provably fair slot spins with seed disclosure and RTP control.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	bootstrap.SetupLogger(cfg, nil)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	table, err := paytable.Load(cfg.PaytablePath)
	if err != nil {
		return fmt.Errorf("failed to load paytable: %w", err)
	}
	slog.Info("Paytable loaded", "version", table.Version, "fingerprint", table.Fingerprint())

	ctx := context.Background()

	stats, err := bootstrap.InitializeStatsStore(ctx, cfg)
	if err != nil {
		return err
	}

	controller := rtp.NewController(stats.Store, table)
	spinCache := audit.NewCache(audit.CacheConfig{Size: cfg.AuditCacheSize, TTL: cfg.AuditCacheTTL})

	slotsService, err := slots.NewService(controller, fairness.NewSeedDeriver(cfg.SeedPrefix), spinCache)
	if err != nil {
		_ = stats.Close()
		return fmt.Errorf("failed to create slots service: %w", err)
	}

	jobs := bootstrap.StartBackgroundJobs(cfg.StatsRefreshInterval, controller, spinCache)

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerWindow: cfg.RateLimitPerWindow,
	}, slotsService, ledger.NewStatic(cfg.DefaultBalance), spinCache, controller)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		SlotsService: slotsService,
		Jobs:         jobs,
		Stats:        stats,
	})

	return runErr
}
