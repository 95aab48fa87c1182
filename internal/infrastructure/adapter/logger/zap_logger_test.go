package logger

import (
	"testing"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(obsCore, core.LogLevelWarn)

	log.Info("posted", map[string]any{"tenant_id": "agency-1"})
	log.Warn("conflict", map[string]any{"attempt": 2})
	log.Error("failed", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "conflict", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["attempt"])
	assert.Equal(t, "failed", entries[1].Message)

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("sql", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestZapLogger_WithSharesLevel(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	parent := NewZapLoggerFromCore(obsCore, core.LogLevelInfo)
	child := parent.With(map[string]any{"component": "summary_cache"})

	child.Debug("hidden", nil)
	child.Info("hit", map[string]any{"tenant_id": "agency-1"})
	parent.SetLevel(core.LogLevelDebug)
	child.Debug("visible", nil)

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "summary_cache", entries[0].ContextMap()["component"])
	assert.Equal(t, "agency-1", entries[0].ContextMap()["tenant_id"])
	assert.Equal(t, "visible", entries[1].Message)
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	log.With(map[string]any{"component": "database"}).Error("dropped", nil)
	assert.NoError(t, log.Flush())
}
