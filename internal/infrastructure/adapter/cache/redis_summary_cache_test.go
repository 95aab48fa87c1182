package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis stores values in memory and records the TTL of each Set
type fakeRedis struct {
	mu     sync.Mutex
	values map[string][]byte
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", f.err)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, f.err)
}

func sampleSummary() *entity.BalanceSummary {
	return &entity.BalanceSummary{
		TenantID: "agency-1",
		Current:  entity.Balances{Cash: 10000, Card: 2500, Transfer: 0, Total: 12500},
		Today:    entity.PeriodTotals{Income: 12500, Expense: 0, Count: 2},
		Month:    entity.PeriodTotals{Income: 15000, Expense: 2500, Count: 3},
		AllTime:  entity.PeriodTotals{Income: 15000, Expense: 2500, Count: 3},
		Reconciliation: entity.Reconciliation{
			Ledger:   entity.Balances{Cash: 10000, Card: 2500, Total: 12500},
			Account:  entity.Balances{Cash: 10000, Card: 2500, Total: 12500},
			Balanced: true,
		},
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisSummaryCache_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	c := newRedisSummaryCache(fake, 30*time.Second, "", logger.NewNoopLogger())
	ctx := context.Background()

	_, found, err := c.Get(ctx, "agency-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "agency-1", sampleSummary()))
	assert.Equal(t, 30*time.Second, fake.ttls["ledger:summary:agency-1"])

	got, found, err := c.Get(ctx, "agency-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sampleSummary().Current, got.Current)
	assert.True(t, got.Reconciliation.Balanced)
	assert.True(t, sampleSummary().GeneratedAt.Equal(got.GeneratedAt))

	require.NoError(t, c.Invalidate(ctx, "agency-1"))
	_, found, err = c.Get(ctx, "agency-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisSummaryCache_CorruptPayloadIsAMiss(t *testing.T) {
	fake := newFakeRedis()
	fake.values["custom:agency-1"] = []byte("{not json")
	c := newRedisSummaryCache(fake, time.Minute, "custom:", logger.NewNoopLogger())

	got, found, err := c.Get(context.Background(), "agency-1")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRedisSummaryCache_PropagatesErrors(t *testing.T) {
	fake := newFakeRedis()
	fake.err = errors.New("connection reset by peer")
	c := newRedisSummaryCache(fake, time.Minute, "", logger.NewNoopLogger())
	ctx := context.Background()

	_, _, err := c.Get(ctx, "agency-1")
	assert.ErrorContains(t, err, "redis get summary")
	assert.ErrorContains(t, c.Set(ctx, "agency-1", sampleSummary()), "redis set summary")
	assert.ErrorContains(t, c.Invalidate(ctx, "agency-1"), "redis delete summary")
}

func TestNoopSummaryCache(t *testing.T) {
	c := NewNoopSummaryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "agency-1", sampleSummary()))
	_, found, err := c.Get(ctx, "agency-1")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx, "agency-1"))
}
