package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change
type step struct {
	version string
	details string
	run     func(ctx context.Context) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// steps lists every schema change in the order it must be applied
func (m *MigrationManager) steps() []step {
	return []step{
		{version: "1.0.0", details: "Ledger tables", run: m.autoMigrateModels},
		{version: "1.1.0", details: "Dialect specific indexes", run: m.createAdvancedIndexes},
	}
}

// MigrateAll applies every step newer than the recorded schema version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	for _, s := range pendingSteps(m.steps(), currentVersion) {
		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})

		if err := s.run(ctx); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// pendingSteps returns the steps after current. An unknown or empty version replays everything;
// every step is idempotent.
func pendingSteps(all []step, current string) []step {
	for i, s := range all {
		if s.version == current {
			return all[i+1:]
		}
	}
	return all
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc, id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // No version found
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now().UTC(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates the ledger tables and their declared indexes
func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.BalanceAccount{},
		&model.Transaction{},
		&model.BalanceAdjustment{},
	)
}

// createAdvancedIndexes adds indexes only some dialects support
func (m *MigrationManager) createAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Info("Skipping advanced indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}
	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		return err
	}
	return m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
}
