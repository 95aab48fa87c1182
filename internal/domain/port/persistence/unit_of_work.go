package persistence

import (
	"context"
)

// UnitOfWork scopes ledger writes to one database transaction. Begin returns a context
// carrying the transaction; repositories obtained from that context read and write
// inside it, and repositories obtained from any other context run unscoped.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	// Rollback is a no-op for a unit that already ended
	Rollback(ctx context.Context) error

	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetBalanceRepository(ctx context.Context) BalanceRepository
}
