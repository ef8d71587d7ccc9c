package logger

// Level represents the minimum severity that will be emitted.
type Level string

const (
	// Debug emits everything. Intended for development.
	Debug Level = "debug"

	// Info emits informational messages and above. The default.
	Info Level = "info"

	// Warning emits warnings and errors only.
	Warning Level = "warning"

	// Error emits errors only.
	Error Level = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum log level to emit.
	// Default: Info
	Level Level

	// ServiceName is attached to every log entry as the "service" field.
	// Typically the name of the application embedding the SDK.
	ServiceName string

	// Development switches to a console-friendly encoder with colored
	// levels instead of JSON. Intended for local runs only.
	Development bool
}
