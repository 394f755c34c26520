package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgShuttingDown       = "Shutting down"
	LogMsgServerForcedToStop = "Server forced to shutdown"
	LogMsgServerStopped      = "Server stopped"
	LogMsgPollerStopped      = "Result poller stopped"
	LogMsgDatabasePoolClosed = "Database pool closed"
)

// Log file retention
const (
	MaxLogFilesKept = 9
)
