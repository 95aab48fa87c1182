package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// DefaultExportLimit caps the rows of a single export
const DefaultExportLimit = 10000

// Config holds the query service settings
type Config struct {
	Location    *time.Location
	ExportLimit int
}

// Service serves read-only views of the ledger. Reads never take the balance row lock.
type Service struct {
	uow          persistence.UnitOfWork
	summaryCache cache.SummaryCache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	location     *time.Location
	exportLimit  int
}

var _ usecase.QueryUseCase = (*Service)(nil)

// NewSummaryService creates a new query service
func NewSummaryService(
	uow persistence.UnitOfWork,
	summaryCache cache.SummaryCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	exportLimit := cfg.ExportLimit
	if exportLimit <= 0 {
		exportLimit = DefaultExportLimit
	}

	return &Service{
		uow:          uow,
		summaryCache: summaryCache,
		timeProvider: timeProvider,
		logger:       logger,
		location:     loc,
		exportLimit:  exportLimit,
	}
}

// GetCurrentBalances returns the running balances of a tenant
func (s *Service) GetCurrentBalances(ctx context.Context, tenantID string) (entity.Balances, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entity.Balances{}, errs.ErrInvalidTenant
	}

	account, err := s.uow.GetBalanceRepository(ctx).Get(ctx, tenantID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return entity.Balances{}, nil
		}
		return entity.Balances{}, fmt.Errorf("failed to read balances: %w", err)
	}

	return account.Snapshot(), nil
}

// GetBalanceSummary returns current balances with today, month and all-time totals
func (s *Service) GetBalanceSummary(ctx context.Context, tenantID string) (*entity.BalanceSummary, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, errs.ErrInvalidTenant
	}

	if cached, ok := s.cachedSummary(ctx, tenantID); ok {
		return cached, nil
	}

	current, err := s.GetCurrentBalances(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)
	now := s.timeProvider.Now()
	day := dayPeriod(now, s.location)
	month := monthPeriod(now, s.location)

	today, err := txnRepo.SumByType(ctx, tenantID, &day.start, &day.end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate today: %w", err)
	}
	monthTotals, err := txnRepo.SumByType(ctx, tenantID, &month.start, &month.end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate month: %w", err)
	}
	allTime, err := txnRepo.SumByType(ctx, tenantID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate all time: %w", err)
	}

	reconciliation, err := s.reconcile(ctx, tenantID, current)
	if err != nil {
		return nil, err
	}

	summary := &entity.BalanceSummary{
		TenantID:       tenantID,
		Current:        current,
		Today:          today,
		Month:          monthTotals,
		AllTime:        allTime,
		Reconciliation: reconciliation,
		GeneratedAt:    now,
	}

	if s.summaryCache != nil {
		if err := s.summaryCache.Set(ctx, tenantID, summary); err != nil {
			s.logger.Warn("Failed to cache balance summary", map[string]any{
				"tenant_id": tenantID,
				"error":     err.Error(),
			})
		}
	}

	return summary, nil
}

// Reconcile compares the signed sum of active transactions with the balance account
func (s *Service) Reconcile(ctx context.Context, tenantID string) (entity.Reconciliation, error) {
	current, err := s.GetCurrentBalances(ctx, tenantID)
	if err != nil {
		return entity.Reconciliation{}, err
	}
	return s.reconcile(ctx, strings.TrimSpace(tenantID), current)
}

// ListTenants returns every tenant with a balance account
func (s *Service) ListTenants(ctx context.Context) ([]string, error) {
	return s.uow.GetBalanceRepository(ctx).ListTenants(ctx)
}

func (s *Service) reconcile(ctx context.Context, tenantID string, current entity.Balances) (entity.Reconciliation, error) {
	sums, err := s.uow.GetTransactionRepository(ctx).SignedSumByMethod(ctx, tenantID)
	if err != nil {
		return entity.Reconciliation{}, fmt.Errorf("failed to sum ledger by method: %w", err)
	}

	ledger := entity.Balances{
		Cash:     sums[entity.MethodCash],
		Card:     sums[entity.MethodCard],
		Transfer: sums[entity.MethodTransfer],
	}
	ledger.Total = ledger.Cash + ledger.Card + ledger.Transfer

	result := entity.NewReconciliation(ledger, current)
	if !result.Balanced {
		s.logger.Error("Ledger does not reconcile with balance account", map[string]any{
			"tenant_id":        tenantID,
			"ledger_total":     entity.FormatCents(ledger.Total),
			"account_total":    entity.FormatCents(current.Total),
			"ledger_cash":      entity.FormatCents(ledger.Cash),
			"account_cash":     entity.FormatCents(current.Cash),
			"ledger_card":      entity.FormatCents(ledger.Card),
			"account_card":     entity.FormatCents(current.Card),
			"ledger_transfer":  entity.FormatCents(ledger.Transfer),
			"account_transfer": entity.FormatCents(current.Transfer),
		})
	}

	return result, nil
}

func (s *Service) cachedSummary(ctx context.Context, tenantID string) (*entity.BalanceSummary, bool) {
	if s.summaryCache == nil {
		return nil, false
	}

	cached, ok, err := s.summaryCache.Get(ctx, tenantID)
	if err != nil {
		s.logger.Warn("Failed to read cached balance summary", map[string]any{
			"tenant_id": tenantID,
			"error":     err.Error(),
		})
		return nil, false
	}
	return cached, ok
}

// GetStatistics breaks active transactions of a window down by category, method and source
func (s *Service) GetStatistics(ctx context.Context, tenantID, from, to string) (*entity.Statistics, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, errs.ErrInvalidTenant
	}

	fromTime, toTime, err := parseWindow(from, to, s.location)
	if err != nil {
		return nil, err
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)

	totals, err := txnRepo.SumByType(ctx, tenantID, fromTime, toTime)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate totals: %w", err)
	}

	stats := &entity.Statistics{TenantID: tenantID, From: fromTime, To: toTime, Totals: totals}

	dimensions := []struct {
		dimension entity.BreakdownDimension
		target    *[]entity.BreakdownRow
	}{
		{entity.DimensionCategory, &stats.ByCategory},
		{entity.DimensionPaymentMethod, &stats.ByPaymentMethod},
		{entity.DimensionSource, &stats.BySource},
	}
	for _, d := range dimensions {
		rows, err := txnRepo.Breakdown(ctx, tenantID, d.dimension, fromTime, toTime)
		if err != nil {
			return nil, fmt.Errorf("failed to break down by %s: %w", d.dimension, err)
		}
		*d.target = rows
	}

	return stats, nil
}

// ListTransactions returns one filtered page of transactions
func (s *Service) ListTransactions(ctx context.Context, query usecase.TransactionQuery) (*entity.TransactionPage, error) {
	filter, err := ParseTransactionQuery(query, s.location)
	if err != nil {
		return nil, err
	}

	items, total, err := s.uow.GetTransactionRepository(ctx).List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &entity.TransactionPage{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ExportTransactions returns every transaction matching the filters up to the export cap.
// Paging parameters of the query are ignored.
func (s *Service) ExportTransactions(ctx context.Context, query usecase.TransactionQuery) ([]*entity.Transaction, error) {
	query.Page, query.Limit = "", ""
	filter, err := ParseTransactionQuery(query, s.location)
	if err != nil {
		return nil, err
	}
	filter.Page = 1
	filter.Limit = s.exportLimit

	items, total, err := s.uow.GetTransactionRepository(ctx).List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	if total > int64(len(items)) {
		s.logger.Warn("Transaction export truncated", map[string]any{
			"tenant_id": filter.TenantID,
			"total":     total,
			"exported":  len(items),
		})
	}

	return items, nil
}

// GetTransaction returns a single transaction of the tenant
func (s *Service) GetTransaction(ctx context.Context, tenantID string, id uuid.UUID) (*entity.Transaction, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, errs.ErrInvalidTenant
	}
	return s.uow.GetTransactionRepository(ctx).GetByID(ctx, tenantID, id)
}
