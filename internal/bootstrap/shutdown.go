package bootstrap

import (
	"context"
	"log/slog"
)

// httpServer is the part of server.Server shutdown needs
type httpServer interface {
	Stop(ctx context.Context) error
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       httpServer
	SlotsService shutdownableService
	Jobs         *BackgroundJobs
	Stats        *StatsBackend
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Slots service (wait for in-flight spins to commit)
// 3. Background jobs (they read the store)
// 4. Stats store (release connections once nothing can use them)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgDrainingSpins)
	if components.SlotsService != nil {
		shutdownService(ctx, ServiceNameSlots, components.SlotsService)
	}

	if components.Jobs != nil {
		slog.Info(LogMsgStoppingBackgroundJob)
		components.Jobs.Stop()
	}

	if components.Stats != nil {
		slog.Info(LogMsgClosingStatsStore, "backend", components.Stats.Name)
		if err := components.Stats.Close(); err != nil {
			slog.Error(LogMsgClosingStatsStore, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
