package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewSQLiteTestConfig returns a config for a private in-memory sqlite database
func NewSQLiteTestConfig(name string) *Config {
	return &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 0,
		RetryDelay:    10 * time.Millisecond,
	}
}

// NewTestDBManager creates a migrated in-memory database that is closed when the test ends.
// A nil time provider uses the real clock.
func NewTestDBManager(t *testing.T, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}
	log := logger.NewNoopLogger()

	// Each test gets its own shared-cache database
	config := NewSQLiteTestConfig("ledger_" + strings.ReplaceAll(uuid.NewString(), "-", ""))

	return NewTestDBManagerWithConfig(t, config, log, timeProvider)
}

// NewTestDBManagerWithConfig connects and migrates the database described by config
func NewTestDBManagerWithConfig(t *testing.T, config *Config, log coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	manager := NewManager(config, log, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       log,
		TimeProvider: timeProvider,
	}
}

// DB returns the gorm handle of the test database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// UnitOfWork returns a unit of work over the test database
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}

// TruncateAllTables empties the ledger tables
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	for _, table := range []string{"balance_adjustments", "transactions", "balance_accounts"} {
		if err := m.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
