package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
)

// EnsureTenantAccounts opens a zeroed balance account for every configured tenant that has none
func EnsureTenantAccounts(ctx context.Context, uow persistence.UnitOfWork, logger coreport.Logger, tenants []string) error {
	for _, tenantID := range tenants {
		if tenantID == "" {
			continue
		}

		txCtx, err := uow.Begin(ctx)
		if err != nil {
			return err
		}

		if _, err := uow.GetBalanceRepository(txCtx).GetForUpdate(txCtx, tenantID); err != nil {
			_ = uow.Rollback(txCtx)
			return fmt.Errorf("open balance account for %s: %w", tenantID, err)
		}

		if err := uow.Commit(txCtx); err != nil {
			return err
		}

		logger.Debug("Tenant balance account ready", map[string]any{"tenant_id": tenantID})
	}

	return nil
}
