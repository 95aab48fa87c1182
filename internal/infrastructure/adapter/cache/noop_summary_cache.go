package cache

import (
	"context"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/cache"
)

// NoopSummaryCache is used when no redis address is configured; every read misses
type NoopSummaryCache struct{}

// NewNoopSummaryCache creates a cache that stores nothing
func NewNoopSummaryCache() cache.SummaryCache {
	return NoopSummaryCache{}
}

// Get always misses
func (NoopSummaryCache) Get(context.Context, string) (*entity.BalanceSummary, bool, error) {
	return nil, false, nil
}

// Set discards the summary
func (NoopSummaryCache) Set(context.Context, string, *entity.BalanceSummary) error {
	return nil
}

// Invalidate does nothing
func (NoopSummaryCache) Invalidate(context.Context, string) error {
	return nil
}
