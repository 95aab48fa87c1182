// Package app wires configuration, storage and the ledger services together.
package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/usecase/summary"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/usecase/transaction"
	cacheadapter "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/export"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// App holds the long-lived components shared by the server and the CLI
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	DB           *database.Manager
	SummaryCache cache.SummaryCache
	Posting      *transaction.Service
	Query        *summary.Service
	AutoPosting  *payment.Adapter
	Exporter     *export.XLSXExporter

	redisClient *redis.Client
}

// Options tune what New sets up
type Options struct {
	// Migrate runs schema migrations after connecting, regardless of database.autoMigrate
	Migrate bool
	// SkipCache leaves the summary cache disabled even when redis is configured
	SkipCache bool
}

// New connects to the database, optionally migrates it and builds the services
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider, opts Options) (*App, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve ledger timezone: %w", err)
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg.Database), logger.With(map[string]any{"component": "database"}), tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	a := &App{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: tp,
		DB:           dbManager,
		Exporter:     export.NewXLSXExporter(loc),
	}

	if opts.Migrate || cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}

		tenants := cfg.Ledger.Tenants
		if !slices.Contains(tenants, cfg.Ledger.DefaultTenant) {
			tenants = append([]string{cfg.Ledger.DefaultTenant}, tenants...)
		}
		if err := migration.EnsureTenantAccounts(ctx, dbManager.CreateUnitOfWork(), logger, tenants); err != nil {
			a.Close()
			return nil, fmt.Errorf("open tenant accounts: %w", err)
		}
	}

	a.SummaryCache = a.summaryCache(ctx, opts.SkipCache)

	uow := dbManager.CreateUnitOfWork()
	a.Posting = transaction.NewTransactionService(uow, a.SummaryCache, tp, logger, transaction.Config{
		EnforceCategoryPairing: cfg.Ledger.EnforceCategoryPairing,
		QueueSize:              cfg.Ledger.QueueSize,
		Retry: transaction.RetryConfig{
			MaxRetries:      cfg.Ledger.MaxRetries,
			InitialInterval: cfg.Ledger.RetryInitialInterval,
			MaxInterval:     cfg.Ledger.RetryMaxInterval,
			JitterFactor:    cfg.Ledger.RetryJitter,
		},
	})
	a.Query = summary.NewSummaryService(uow, a.SummaryCache, tp, logger, summary.Config{
		Location:    loc,
		ExportLimit: cfg.Ledger.ExportLimit,
	})
	a.AutoPosting = payment.NewAdapter(a.Posting, logger)

	return a, nil
}

// summaryCache connects to redis when configured; the ledger runs uncached otherwise
func (a *App) summaryCache(ctx context.Context, skip bool) cache.SummaryCache {
	if skip || a.Config.Cache.RedisAddr == "" {
		return cacheadapter.NewNoopSummaryCache()
	}

	c, client, err := cacheadapter.NewRedisSummaryCache(ctx, cacheadapter.Options{
		Addr:      a.Config.Cache.RedisAddr,
		Password:  a.Config.Cache.RedisPassword,
		DB:        a.Config.Cache.RedisDB,
		TTL:       a.Config.Cache.SummaryTTL,
		KeyPrefix: a.Config.Cache.KeyPrefix,
	}, a.Logger.With(map[string]any{"component": "summary_cache"}))
	if err != nil {
		a.Logger.Warn("Summary cache disabled", map[string]any{
			"redis_addr": a.Config.Cache.RedisAddr,
			"error":      err.Error(),
		})
		return cacheadapter.NewNoopSummaryCache()
	}

	a.redisClient = client
	return c
}

// Close drains the posting queue and releases the cache and database connections
func (a *App) Close() {
	if a.Posting != nil {
		a.Posting.Shutdown()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database", map[string]any{"error": err.Error()})
	}
}
