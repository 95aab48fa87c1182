package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces summary keys
const DefaultKeyPrefix = "ledger:summary:"

// redisClient is the subset of go-redis commands the cache needs
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisSummaryCache keeps balance summaries in redis as JSON
type RedisSummaryCache struct {
	client    redisClient
	ttl       time.Duration
	keyPrefix string
	logger    coreport.Logger
}

// Options configures the redis connection
type Options struct {
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string
}

// NewRedisSummaryCache connects to redis and verifies the connection with a ping
func NewRedisSummaryCache(ctx context.Context, opts Options, logger coreport.Logger) (*RedisSummaryCache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	logger.Info("Connected to redis summary cache", map[string]any{
		"addr": opts.Addr,
		"db":   opts.DB,
		"ttl":  opts.TTL.String(),
	})

	return newRedisSummaryCache(client, opts.TTL, opts.KeyPrefix, logger), client, nil
}

func newRedisSummaryCache(client redisClient, ttl time.Duration, keyPrefix string, logger coreport.Logger) *RedisSummaryCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisSummaryCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

var _ cache.SummaryCache = (*RedisSummaryCache)(nil)

func (c *RedisSummaryCache) key(tenantID string) string {
	return c.keyPrefix + tenantID
}

// Get returns the cached summary of the tenant
func (c *RedisSummaryCache) Get(ctx context.Context, tenantID string) (*entity.BalanceSummary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get summary: %w", err)
	}

	var summary entity.BalanceSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A payload we cannot read is treated as a miss and replaced on the next Set
		c.logger.Warn("Discarding unreadable cached summary", map[string]any{
			"tenant_id": tenantID,
			"error":     err.Error(),
		})
		return nil, false, nil
	}
	return &summary, true, nil
}

// Set stores the summary for the configured TTL
func (c *RedisSummaryCache) Set(ctx context.Context, tenantID string, summary *entity.BalanceSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := c.client.Set(ctx, c.key(tenantID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set summary: %w", err)
	}
	return nil
}

// Invalidate deletes the tenant's summary
func (c *RedisSummaryCache) Invalidate(ctx context.Context, tenantID string) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("redis delete summary: %w", err)
	}
	return nil
}
