package logger

import (
	"strings"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the zap logger
type Options struct {
	Level      string // debug, info, warn, error
	Format     string // json or console
	Output     string // stdout, stderr or a file path
	TimeFormat string // layout for console output; ISO8601 when empty
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(opts Options) (core.Logger, error) {
	var cfg zap.Config

	if strings.EqualFold(opts.Format, "console") {
		// Console encoder for local development
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// JSON encoder for structured logging
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if opts.TimeFormat != "" {
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(opts.TimeFormat)
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.DisableCaller = !opts.CallerInfo

	if opts.Output != "" {
		cfg.OutputPaths = []string{opts.Output}
	}

	level := zap.NewAtomicLevelAt(toZapLevel(ParseLevel(opts.Level)))
	cfg.Level = level

	zapLogger, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: zapLogger, level: level}, nil
}

// NewZapLoggerFromCore wraps an existing zap core, mainly for tests that observe log output
func NewZapLoggerFromCore(c zapcore.Core, level core.LogLevel) core.Logger {
	atomic := zap.NewAtomicLevelAt(toZapLevel(level))
	return &ZapLogger{logger: zap.New(c), level: atomic}
}

// NewNoopLogger returns a logger that discards everything
func NewNoopLogger() core.Logger {
	return &ZapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevelAt(zap.InfoLevel)}
}

// NewDefaultLogger creates a console logger at info level
func NewDefaultLogger() core.Logger {
	l, err := NewZapLogger(Options{Level: "info", Format: "console", CallerInfo: true})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return l
}

// ParseLevel converts a configured level name to a LogLevel, defaulting to info
func ParseLevel(level string) core.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return core.LogLevelDebug
	case "warn", "warning":
		return core.LogLevelWarn
	case "error":
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

func (l *ZapLogger) log(level zapcore.Level, message string, fields map[string]any) {
	if !l.level.Enabled(level) {
		return
	}
	if ce := l.logger.Check(level, message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.log(zap.DebugLevel, message, fields)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.log(zap.InfoLevel, message, fields)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.log(zap.WarnLevel, message, fields)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.log(zap.ErrorLevel, message, fields)
}

// With returns a child logger carrying fields on every entry
func (l *ZapLogger) With(fields map[string]any) core.Logger {
	return &ZapLogger{logger: l.logger.With(mapToZapFields(fields)...), level: l.level}
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
