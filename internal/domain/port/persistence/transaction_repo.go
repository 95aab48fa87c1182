package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionRepository defines storage operations on ledger entries.
// Entries are never deleted and their financial fields are never updated.
type TransactionRepository interface {
	// Create inserts a posted transaction
	//
	// Possible errors:
	// - ErrConcurrencyConflict: If the (tenant, number) pair was taken by another writer
	// - ErrDuplicateTransaction: If the idempotency key was already used
	Create(ctx context.Context, tx *entity.Transaction) error

	// GetByID retrieves a transaction of the tenant
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no such transaction exists for the tenant
	GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*entity.Transaction, error)

	// GetByIdempotencyKey retrieves the transaction posted for a collaborator event key
	GetByIdempotencyKey(ctx context.Context, tenantID, key string) (*entity.Transaction, error)

	// MarkCancelled persists the cancellation metadata of an active transaction
	//
	// Possible errors:
	// - ErrAlreadyCancelled: If the row is no longer active
	MarkCancelled(ctx context.Context, tx *entity.Transaction) error

	// List returns one page of the tenant's transactions and the total match count
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error)

	// SumByType aggregates active transactions created in [from, to)
	SumByType(ctx context.Context, tenantID string, from, to *time.Time) (entity.PeriodTotals, error)

	// SignedSumByMethod returns income minus expense of active transactions per method
	SignedSumByMethod(ctx context.Context, tenantID string) (map[entity.PaymentMethod]int64, error)

	// Breakdown groups active transactions created in [from, to) by a dimension
	Breakdown(ctx context.Context, tenantID string, dimension entity.BreakdownDimension, from, to *time.Time) ([]entity.BreakdownRow, error)
}
