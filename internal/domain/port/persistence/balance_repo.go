package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
)

// BalanceRepository defines storage operations on the per-tenant balance account
type BalanceRepository interface {
	// Get reads the account without locking
	//
	// Possible errors:
	// - ErrBalanceAccountNotFound: If the tenant has never posted
	Get(ctx context.Context, tenantID string) (*entity.BalanceAccount, error)

	// GetForUpdate locks the account row for the rest of the transaction,
	// creating a zeroed account on first use
	GetForUpdate(ctx context.Context, tenantID string) (*entity.BalanceAccount, error)

	// Save writes balances and numbering back, guarded by the version read under lock.
	// On success the account's version is advanced.
	//
	// Possible errors:
	// - ErrConcurrencyConflict: If another writer saved the account first
	Save(ctx context.Context, account *entity.BalanceAccount) error

	// CreateAdjustment records the compensating movement of a cancellation
	CreateAdjustment(ctx context.Context, adjustment *entity.BalanceAdjustment) error

	// ListTenants returns every tenant that owns a balance account
	ListTenants(ctx context.Context) ([]string, error)
}
