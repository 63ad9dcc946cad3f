package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting FairSpin"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Stats Store Configuration
// =============================================================================

// Log messages for stats store initialization
const (
	LogMsgStatsStoreReady   = "Stats store ready"
	LogMsgMigrationsApplied = "Database migrations applied"

	ErrMsgUnknownBackend     = "unknown stats backend"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to migrate database"
	ErrMsgFailedCreateStore  = "failed to create stats store"
	ErrMsgFailedConnectRedis = "failed to connect to redis"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	LogMsgBackgroundJobsStarted = "Background jobs started"
	LogMsgStoppingBackgroundJob = "Stopping background jobs..."
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgDrainingSpins        = "Draining in-flight spins..."
	LogMsgClosingStatsStore    = "Closing stats store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Service names for shutdown logging
	ServiceNameSlots = "slots"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
