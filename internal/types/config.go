package types

type RunMode string

const (
	// ModeLocal is the mode for local development and scripts
	ModeLocal RunMode = "local"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
