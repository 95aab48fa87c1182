package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes of the ledger tables
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// advancedIndexes lists the PostgreSQL-only indexes
var advancedIndexes = []indexStatement{
	{
		// Statistics and reconciliation only read active entries
		name: "idx_transactions_active_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_active_created
			ON transactions (tenant_id, created_at)
			WHERE is_active = true`,
	},
	{
		name: "idx_transactions_active_method",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_active_method
			ON transactions (tenant_id, payment_method, entry_type)
			WHERE is_active = true`,
	},
	{
		name: "idx_transactions_linked_document",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_linked_document
			ON transactions (tenant_id, linked_document_kind, linked_document_id)
			WHERE linked_document_id IS NOT NULL`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// The balance row is rewritten on every post
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE balance_accounts SET (fillfactor = 70)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for balance_accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN tenant_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for tenant_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
