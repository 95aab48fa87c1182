package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	// slowStatement is the duration above which any statement is reported
	slowStatement = 200 * time.Millisecond
	// slowLock is the duration above which a balance row lock is reported.
	// Every post for a tenant waits on that row, so this is kept much tighter.
	slowLock = 50 * time.Millisecond
)

// gormLogger routes gorm's statement log through the application logger
type gormLogger struct {
	log   coreport.Logger
	clock coreport.TimeProvider
	level gormlogger.LogLevel
	slow  time.Duration
}

// NewGormLogger builds the gorm logger for the configured database log level
func NewGormLogger(log coreport.Logger, clock coreport.TimeProvider, level string) gormlogger.Interface {
	return &gormLogger{log: log, clock: clock, level: gormLevel(level), slow: slowStatement}
}

func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn", "warning":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...), nil)
	}
}

// Trace reports failed statements, slow statements and slow balance locks.
// Everything else goes to debug when the level is info.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := l.clock.Since(begin)
	sql, rows := fc()
	stmt := describeStatement(sql)

	fields := map[string]any{
		"kind":    stmt.Kind,
		"table":   stmt.Table,
		"rows":    rows,
		"elapsed": elapsed.String(),
	}

	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}

	switch {
	case err != nil && l.level >= gormlogger.Error:
		fields["error"] = err.Error()
		fields["sql"] = sql
		l.log.Error("Statement failed", fields)
	case stmt.Locking && elapsed > slowLock && l.level >= gormlogger.Warn:
		l.log.Warn("Slow balance lock acquisition", fields)
	case elapsed > l.slow && l.level >= gormlogger.Warn:
		fields["sql"] = sql
		l.log.Warn("Slow statement", fields)
	case l.level >= gormlogger.Info:
		fields["sql"] = sql
		l.log.Debug("Statement", fields)
	}
}

// statement is the coarse shape of a SQL statement
type statement struct {
	Kind    string
	Table   string
	Locking bool
}

// describeStatement classifies sql by its leading keyword and the table it targets
func describeStatement(sql string) statement {
	words := strings.Fields(sql)
	if len(words) == 0 {
		return statement{}
	}

	var stmt statement
	stmt.Kind = strings.ToUpper(words[0])

	marker := ""
	switch stmt.Kind {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			stmt.Table = tableName(words[1])
		}
	}
	if marker != "" {
		for i, w := range words[:len(words)-1] {
			if strings.EqualFold(w, marker) {
				stmt.Table = tableName(words[i+1])
				break
			}
		}
	}

	upper := strings.ToUpper(sql)
	stmt.Locking = stmt.Kind == "SELECT" && strings.Contains(upper, "FOR UPDATE")
	return stmt
}

func tableName(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		word = word[:i]
	}
	return strings.ToLower(strings.Trim(word, "\"`"))
}
