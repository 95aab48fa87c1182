package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors information
	LogLevelError
)

// Logger is the structured logger every layer writes through. Fields are flat
// snake_case keys such as tenant_id, transaction_id and request_id.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel
	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// With returns a logger that adds fields to every entry, e.g. the component name.
	// The child shares the parent's level.
	With(fields map[string]any) Logger

	// Flush writes buffered entries; call it before the process exits
	Flush() error
}
