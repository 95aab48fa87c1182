package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// breakdownColumns whitelists the columns statistics may group by
var breakdownColumns = map[entity.BreakdownDimension]string{
	entity.DimensionCategory:      "category",
	entity.DimensionPaymentMethod: "payment_method",
	entity.DimensionSource:        "source",
}

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(t *entity.Transaction) model.Transaction {
	m := model.Transaction{
		ID:                 t.ID.String(),
		TenantID:           t.TenantID,
		TransactionNumber:  t.TransactionNumber,
		Reference:          t.Reference(),
		Type:               string(t.Type),
		Category:           string(t.Category),
		Amount:             t.Amount,
		PaymentMethod:      string(t.PaymentMethod),
		Source:             string(t.Source),
		Description:        t.Description,
		Notes:              t.Notes,
		CustomerRef:        t.CustomerRef,
		BalanceBefore:      t.BalanceBefore,
		BalanceAfter:       t.BalanceAfter,
		IsActive:           t.IsActive,
		CancellationReason: t.CancellationReason,
		CancelledBy:        t.CancelledBy,
		CreatedBy:          t.CreatedBy,
		CreatedAt:          t.CreatedAt.UTC(),
	}
	if t.LinkedDocument != nil {
		kind := string(t.LinkedDocument.Kind)
		id := t.LinkedDocument.ID
		m.LinkedDocumentKind = &kind
		m.LinkedDocumentID = &id
	}
	if t.IdempotencyKey != "" {
		key := t.IdempotencyKey
		m.IdempotencyKey = &key
	}
	if t.CancelledAt != nil {
		at := t.CancelledAt.UTC()
		m.CancelledAt = &at
	}
	return m
}

// modelToEntity converts a database model to a transaction entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) (*entity.Transaction, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed transaction id %q", errs.ErrInternalServer, m.ID)
	}

	t := &entity.Transaction{
		ID:                 id,
		TenantID:           m.TenantID,
		TransactionNumber:  m.TransactionNumber,
		Type:               entity.TransactionType(m.Type),
		Category:           entity.Category(m.Category),
		Amount:             m.Amount,
		PaymentMethod:      entity.PaymentMethod(m.PaymentMethod),
		Source:             entity.Source(m.Source),
		Description:        m.Description,
		Notes:              m.Notes,
		CustomerRef:        m.CustomerRef,
		BalanceBefore:      m.BalanceBefore,
		BalanceAfter:       m.BalanceAfter,
		IsActive:           m.IsActive,
		CancelledAt:        m.CancelledAt,
		CancellationReason: m.CancellationReason,
		CancelledBy:        m.CancelledBy,
		CreatedBy:          m.CreatedBy,
		CreatedAt:          m.CreatedAt,
	}
	if m.LinkedDocumentKind != nil && m.LinkedDocumentID != nil {
		t.LinkedDocument = &entity.LinkedDocument{
			Kind: entity.DocumentKind(*m.LinkedDocumentKind),
			ID:   *m.LinkedDocumentID,
		}
	}
	if m.IdempotencyKey != nil {
		t.IdempotencyKey = *m.IdempotencyKey
	}
	return t, nil
}

// Create inserts a posted transaction
func (r *TransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	m := r.entityToModel(t)

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) && !strings.Contains(err.Error(), "idempotency") {
			// Another writer took this number; the unit must be retried on fresh state
			r.logger.Warn("Transaction number already taken", map[string]any{
				"tenant_id":          t.TenantID,
				"transaction_number": t.TransactionNumber,
			})
			return fmt.Errorf("%w: transaction number %d taken", errs.ErrConcurrencyConflict, t.TransactionNumber)
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"tenant_id":      t.TenantID,
			"transaction_id": t.ID.String(),
			"error":          err.Error(),
		})
		return r.errorClassifier.ToDomainError(err, errs.ErrTransactionNotFound)
	}

	r.logger.Debug("Transaction created", map[string]any{
		"tenant_id":          t.TenantID,
		"transaction_id":     t.ID.String(),
		"transaction_number": t.TransactionNumber,
	})
	return nil
}

// GetByID retrieves a transaction of the tenant
func (r *TransactionRepository) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id.String()).
		First(&m).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrTransactionNotFound)
	}

	return r.modelToEntity(&m)
}

// GetByIdempotencyKey retrieves the transaction posted for a collaborator event key
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, tenantID, key string) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND idempotency_key = ?", tenantID, key).
		First(&m).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrTransactionNotFound)
	}

	return r.modelToEntity(&m)
}

// MarkCancelled persists the cancellation metadata, only if the row is still active
func (r *TransactionRepository) MarkCancelled(ctx context.Context, t *entity.Transaction) error {
	var cancelledAt *time.Time
	if t.CancelledAt != nil {
		at := t.CancelledAt.UTC()
		cancelledAt = &at
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("tenant_id = ? AND id = ? AND is_active = ?", t.TenantID, t.ID.String(), true).
		Updates(map[string]any{
			"is_active":           false,
			"cancelled_at":        cancelledAt,
			"cancellation_reason": t.CancellationReason,
			"cancelled_by":        t.CancelledBy,
		})
	if result.Error != nil {
		r.logger.Error("Failed to cancel transaction", map[string]any{
			"tenant_id":      t.TenantID,
			"transaction_id": t.ID.String(),
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, errs.ErrTransactionNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAlreadyCancelled
	}

	return nil
}

// filtered builds the WHERE part of a listing
func (r *TransactionRepository) filtered(ctx context.Context, f entity.TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("tenant_id = ?", f.TenantID)

	if f.Type != nil {
		q = q.Where("entry_type = ?", string(*f.Type))
	}
	if f.Category != nil {
		q = q.Where("category = ?", string(*f.Category))
	}
	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", string(*f.PaymentMethod))
	}
	if f.Source != nil {
		q = q.Where("source = ?", string(*f.Source))
	}

	switch f.Status {
	case entity.StatusActive:
		q = q.Where("is_active = ?", true)
	case entity.StatusCancelled:
		q = q.Where("is_active = ?", false)
	}

	if f.CustomerRef != "" {
		q = q.Where("customer_ref = ?", f.CustomerRef)
	}
	if f.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		q = q.Where("(LOWER(description) LIKE ? ESCAPE '!' OR LOWER(reference) LIKE ? ESCAPE '!')", like, like)
	}

	return withWindow(q, f.From, f.To)
}

// likeEscaper makes search text match literally. '!' is the escape character because
// mysql reads a backslash inside a string literal as its own escape.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// withWindow restricts a query to created_at in [from, to)
func withWindow(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("created_at >= ?", from.UTC())
	}
	if to != nil {
		q = q.Where("created_at < ?", to.UTC())
	}
	return q
}

// List returns one page of the tenant's transactions and the total match count
func (r *TransactionRepository) List(ctx context.Context, f entity.TransactionFilter) ([]*entity.Transaction, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}
	if total == 0 {
		return []*entity.Transaction{}, 0, nil
	}

	desc := f.SortOrder != entity.SortAsc
	var rows []model.Transaction
	err := r.filtered(ctx, f).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "transaction_number"}, Desc: desc}).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}

	items := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		t, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}

	return items, total, nil
}

// typeTotalRow is one row of a SUM grouped by entry type
type typeTotalRow struct {
	EntryType string
	Total     decimal.Decimal
	Cnt       int64
}

// SumByType aggregates active transactions created in [from, to)
func (r *TransactionRepository) SumByType(ctx context.Context, tenantID string, from, to *time.Time) (entity.PeriodTotals, error) {
	var rows []typeTotalRow
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("entry_type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS cnt").
		Where("tenant_id = ? AND is_active = ?", tenantID, true)
	err := withWindow(q, from, to).Group("entry_type").Scan(&rows).Error
	if err != nil {
		return entity.PeriodTotals{}, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}

	var totals entity.PeriodTotals
	for _, row := range rows {
		switch entity.TransactionType(row.EntryType) {
		case entity.TypeIncome:
			totals.Income = row.Total.IntPart()
		case entity.TypeExpense:
			totals.Expense = row.Total.IntPart()
		}
		totals.Count += row.Cnt
	}

	return totals, nil
}

// methodSumRow is one row of a signed SUM grouped by payment method
type methodSumRow struct {
	PaymentMethod string
	Total         decimal.Decimal
}

// SignedSumByMethod returns income minus expense of active transactions per method
func (r *TransactionRepository) SignedSumByMethod(ctx context.Context, tenantID string) (map[entity.PaymentMethod]int64, error) {
	var rows []methodSumRow
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("payment_method, COALESCE(SUM(CASE WHEN entry_type = ? THEN amount ELSE -amount END), 0) AS total", string(entity.TypeIncome)).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}

	sums := make(map[entity.PaymentMethod]int64, len(rows))
	for _, row := range rows {
		sums[entity.PaymentMethod(row.PaymentMethod)] = row.Total.IntPart()
	}
	return sums, nil
}

// bucketRow is one row of a breakdown grouped by a dimension and entry type
type bucketRow struct {
	Bucket    string
	EntryType string
	Total     decimal.Decimal
	Cnt       int64
}

// Breakdown groups active transactions created in [from, to) by a dimension
func (r *TransactionRepository) Breakdown(
	ctx context.Context,
	tenantID string,
	dimension entity.BreakdownDimension,
	from, to *time.Time,
) ([]entity.BreakdownRow, error) {
	column, ok := breakdownColumns[dimension]
	if !ok {
		return nil, errs.NewFilterError("dimension", string(dimension))
	}

	var rows []bucketRow
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(column+" AS bucket, entry_type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS cnt").
		Where("tenant_id = ? AND is_active = ?", tenantID, true)
	err := withWindow(q, from, to).
		Group(column + ", entry_type").
		Order(column).
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}

	result := make([]entity.BreakdownRow, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, seen := index[row.Bucket]
		if !seen {
			i = len(result)
			index[row.Bucket] = i
			result = append(result, entity.BreakdownRow{Key: row.Bucket})
		}
		switch entity.TransactionType(row.EntryType) {
		case entity.TypeIncome:
			result[i].Income += row.Total.IntPart()
		case entity.TypeExpense:
			result[i].Expense += row.Total.IntPart()
		}
		result[i].Count += row.Cnt
	}

	return result, nil
}
