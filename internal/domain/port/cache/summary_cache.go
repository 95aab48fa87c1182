package cache

import (
	"context"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
)

// SummaryCache stores computed balance summaries per tenant
type SummaryCache interface {
	// Get returns the cached summary and whether it was present
	Get(ctx context.Context, tenantID string) (*entity.BalanceSummary, bool, error)
	// Set stores a summary until it expires or is invalidated
	Set(ctx context.Context, tenantID string, summary *entity.BalanceSummary) error
	// Invalidate drops the tenant's summary after a committed write
	Invalidate(ctx context.Context, tenantID string) error
}
