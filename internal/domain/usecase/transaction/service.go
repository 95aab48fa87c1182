package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// Config holds the posting engine settings
type Config struct {
	EnforceCategoryPairing bool
	QueueSize              int
	Retry                  RetryConfig
}

// Service is the posting engine. Every ledger write goes through the tenant
// queue and then through one database unit holding the balance row lock.
type Service struct {
	uow                persistence.UnitOfWork
	queue              *TenantQueue
	validator          *DraftValidator
	idempotencyHandler *IdempotencyHandler
	summaryCache       cache.SummaryCache
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	retry              RetryConfig
	newID              func() uuid.UUID
}

// NewTransactionService creates a new posting engine
func NewTransactionService(
	uow persistence.UnitOfWork,
	summaryCache cache.SummaryCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	return &Service{
		uow:                uow,
		queue:              NewTenantQueue(logger, cfg.QueueSize),
		validator:          NewDraftValidator(cfg.EnforceCategoryPairing),
		idempotencyHandler: NewIdempotencyHandler(),
		summaryCache:       summaryCache,
		timeProvider:       timeProvider,
		logger:             logger,
		retry:              cfg.Retry,
		newID:              uuid.New,
	}
}

// runInUnit executes fn inside a database transaction, rolling back on any error or panic
func (s *Service) runInUnit(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.uow.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback ledger unit", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}

// invalidateSummary drops the cached summary once a write has committed
func (s *Service) invalidateSummary(ctx context.Context, tenantID string) {
	if s.summaryCache == nil {
		return
	}
	if err := s.summaryCache.Invalidate(context.WithoutCancel(ctx), tenantID); err != nil {
		s.logger.Warn("Failed to invalidate balance summary cache", map[string]any{
			"tenant_id": tenantID,
			"error":     err.Error(),
		})
	}
}

// Shutdown drains the tenant queues
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}
