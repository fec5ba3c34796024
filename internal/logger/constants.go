package logger

// ContextKeyRequestID stores the request ID in a context
const ContextKeyRequestID = "request_id"

// Log level names
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Environments that get source locations in log records
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentLocal       = "local"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
