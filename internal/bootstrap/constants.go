package bootstrap

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSlotsBot    = "Starting SlotsBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStorageSelected     = "Storage backend selected"
	LogMsgStateRestored       = "Account state restored"
	LogMsgPaytableLoaded      = "Custom paytable loaded"
	LogMsgDefaultPaytable     = "Using built-in paytable"
)

// Error messages for startup
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to run migrations"
	ErrMsgFailedConnectRedis    = "failed to connect to redis"
	ErrMsgUnknownBackend        = "unknown storage backend"
	ErrMsgFailedLoadState       = "failed to load saved state"
	ErrMsgFailedLoadPaytable    = "failed to load paytable"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSlotsShutdownFailed  = "Slots service shutdown failed"
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgStorageClosed        = "Storage closed"
)
