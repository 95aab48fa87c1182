package database

import (
	"context"
	"time"
)

// HealthStatus is the result of a database health probe
type HealthStatus struct {
	Healthy       bool      `json:"healthy"`
	Driver        string    `json:"driver"`
	SchemaVersion string    `json:"schemaVersion,omitempty"`
	Latency       string    `json:"latency"`
	Error         string    `json:"error,omitempty"`
	Pool          PoolStats `json:"pool"`
}

// CheckHealth pings the database within timeout and reports the schema version and pool usage
func (m *Manager) CheckHealth(ctx context.Context, timeout time.Duration) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := HealthStatus{Driver: m.config.Driver}
	if m.db == nil {
		status.Error = "database is not connected"
		return status
	}

	start := m.timeProvider.Now()
	sqlDB, err := m.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	status.Latency = m.timeProvider.Since(start).String()

	if err != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		status.Error = m.errorMapper.MapError(err, "ping").Error()
		return status
	}

	status.Healthy = true
	status.Pool = newPoolStats(sqlDB.Stats())

	version, err := m.migrationMgr.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Warn("Failed to read schema version", map[string]any{
			"error": err.Error(),
		})
	}
	status.SchemaVersion = version
	return status
}
