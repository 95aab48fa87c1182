package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// poolMonitorInterval is how often pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	migrationMgr *migration.MigrationManager
	pool         *poolMonitor
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect establishes a database connection, retrying while the server is unreachable
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	attempts := 0
	var gormDB *gorm.DB
	open := func() error {
		attempts++
		dialector, err := m.dialector()
		if err != nil {
			return backoff.Permanent(err)
		}

		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: NewGormLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			PrepareStmt: m.config.Driver != DriverSQLite,
		})
		if err != nil {
			return err
		}
		gormDB = db
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(m.config.RetryDelay), uint64(m.config.RetryAttempts)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		m.logger.Warn("Retrying database connection", map[string]any{
			"attempt": attempts,
			"of":      m.config.RetryAttempts + 1,
			"delay":   wait.String(),
			"error":   err.Error(),
		})
	}

	if err := backoff.RetryNotify(open, policy, notify); err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":    err.Error(),
			"attempts": attempts,
		})
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	// An in-memory sqlite database only exists inside its connection
	maxOpen, maxIdle := m.config.MaxOpenConns, m.config.MaxIdleConns
	if m.config.IsInMemory() {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if !m.config.IsInMemory() {
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": maxOpen,
		"max_idle_conns": maxIdle,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	m.pool = newPoolMonitor(sqlDB, m.logger)
	m.pool.start(poolMonitorInterval)

	return m.db, nil
}

// dialector picks the gorm driver for the configured database
func (m *Manager) dialector() (gorm.Dialector, error) {
	dsn := m.config.DSN()
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Driver returns the configured driver name
func (m *Manager) Driver() string {
	return m.config.Driver
}

// Migrate brings the schema up to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.migrationMgr == nil {
		return fmt.Errorf("database is not connected")
	}
	return m.migrationMgr.MigrateAll(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.pool != nil {
		m.pool.close()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// MigrationManager returns the migration manager
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return m.migrationMgr
}
