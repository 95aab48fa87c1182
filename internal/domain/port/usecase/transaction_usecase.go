package usecase

import (
	"context"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// CancelRequest asks for a posted transaction to be reversed
type CancelRequest struct {
	TenantID      string
	TransactionID uuid.UUID
	Reason        string
	CancelledBy   string
}

// PostingUseCase is the only path that creates or reverses ledger entries
type PostingUseCase interface {
	// Post validates a draft and records it with its balance effect in one atomic unit
	Post(ctx context.Context, draft entity.TransactionDraft) (*entity.Transaction, error)

	// Cancel deactivates a manual transaction and reverses its balance effect
	Cancel(ctx context.Context, req CancelRequest) (*entity.Transaction, error)
}

// TransactionQuery is a listing request with raw, unparsed filter values
type TransactionQuery struct {
	TenantID      string
	Type          string
	Category      string
	PaymentMethod string
	Source        string
	Status        string
	CustomerRef   string
	Search        string
	From          string
	To            string
	Page          string
	Limit         string
	SortOrder     string
}

// QueryUseCase serves read-only views of the ledger
type QueryUseCase interface {
	// GetCurrentBalances returns the running balances, zero for a tenant that never posted
	GetCurrentBalances(ctx context.Context, tenantID string) (entity.Balances, error)

	// GetBalanceSummary returns balances with today, month and all-time totals
	GetBalanceSummary(ctx context.Context, tenantID string) (*entity.BalanceSummary, error)

	// GetStatistics breaks active transactions of a window down by category, method and source
	GetStatistics(ctx context.Context, tenantID, from, to string) (*entity.Statistics, error)

	// ListTransactions returns one filtered page of transactions
	ListTransactions(ctx context.Context, query TransactionQuery) (*entity.TransactionPage, error)

	// ExportTransactions returns every transaction matching the filters, up to the export cap
	ExportTransactions(ctx context.Context, query TransactionQuery) ([]*entity.Transaction, error)

	// GetTransaction returns a single transaction of the tenant
	GetTransaction(ctx context.Context, tenantID string, id uuid.UUID) (*entity.Transaction, error)
}
