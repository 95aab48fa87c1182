package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository implements BalanceRepository interface using GORM
type BalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a balance account model to an entity
func (r *BalanceRepository) modelToEntity(m *model.BalanceAccount) *entity.BalanceAccount {
	return &entity.BalanceAccount{
		TenantID:              m.TenantID,
		Cash:                  m.CashBalance,
		Card:                  m.CardBalance,
		Transfer:              m.TransferBalance,
		Total:                 m.TotalBalance,
		Version:               m.Version,
		LastTransactionNumber: m.LastTransactionNumber,
		UpdatedAt:             m.UpdatedAt,
	}
}

// Get reads the account without locking
func (r *BalanceRepository) Get(ctx context.Context, tenantID string) (*entity.BalanceAccount, error) {
	var m model.BalanceAccount
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&m).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrBalanceAccountNotFound)
	}
	return r.modelToEntity(&m), nil
}

// GetForUpdate locks the tenant's balance row with SELECT ... FOR UPDATE.
// A missing row is inserted zeroed first; a concurrent insert of the same tenant is ignored.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, tenantID string) (*entity.BalanceAccount, error) {
	m, err := r.selectForUpdate(ctx, tenantID)
	if err == nil {
		return r.modelToEntity(m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Error("Failed to lock balance account", map[string]any{
			"tenant_id": tenantID,
			"error":     err.Error(),
		})
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrBalanceAccountNotFound)
	}

	now := r.timeProvider.Now().UTC()
	account := model.BalanceAccount{TenantID: tenantID, CreatedAt: now, UpdatedAt: now}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "tenant_id"}}, DoNothing: true}).
		Create(&account).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrBalanceAccountNotFound)
	}

	r.logger.Info("Balance account opened", map[string]any{
		"tenant_id": tenantID,
	})

	m, err = r.selectForUpdate(ctx, tenantID)
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrBalanceAccountNotFound)
	}
	return r.modelToEntity(m), nil
}

func (r *BalanceRepository) selectForUpdate(ctx context.Context, tenantID string) (*model.BalanceAccount, error) {
	var m model.BalanceAccount
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ?", tenantID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes balances and numbering back if nobody else saved since the account was read
func (r *BalanceRepository) Save(ctx context.Context, account *entity.BalanceAccount) error {
	result := r.db.WithContext(ctx).Model(&model.BalanceAccount{}).
		Where("tenant_id = ? AND version = ?", account.TenantID, account.Version).
		Updates(map[string]any{
			"cash_balance":            account.Cash,
			"card_balance":            account.Card,
			"transfer_balance":        account.Transfer,
			"total_balance":           account.Total,
			"last_transaction_number": account.LastTransactionNumber,
			"version":                 account.Version + 1,
			"updated_at":              account.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		r.logger.Error("Failed to save balance account", map[string]any{
			"tenant_id": account.TenantID,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.ToDomainError(result.Error, errs.ErrBalanceAccountNotFound)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Balance account version changed concurrently", map[string]any{
			"tenant_id": account.TenantID,
			"version":   account.Version,
		})
		return fmt.Errorf("%w: version %d is stale", errs.ErrConcurrencyConflict, account.Version)
	}

	account.Version++
	return nil
}

// CreateAdjustment records the compensating movement of a cancellation
func (r *BalanceRepository) CreateAdjustment(ctx context.Context, a *entity.BalanceAdjustment) error {
	m := model.BalanceAdjustment{
		ID:            a.ID.String(),
		TenantID:      a.TenantID,
		TransactionID: a.TransactionID.String(),
		PaymentMethod: string(a.PaymentMethod),
		Delta:         a.Delta,
		BalanceBefore: a.BalanceBefore,
		BalanceAfter:  a.BalanceAfter,
		Reason:        a.Reason,
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Error("Failed to record balance adjustment", map[string]any{
			"tenant_id":      a.TenantID,
			"transaction_id": a.TransactionID.String(),
			"error":          err.Error(),
		})
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyCancelled
		}
		return r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}
	return nil
}

// ListTenants returns every tenant that owns a balance account
func (r *BalanceRepository) ListTenants(ctx context.Context) ([]string, error) {
	var tenants []string
	err := r.db.WithContext(ctx).Model(&model.BalanceAccount{}).
		Order("tenant_id").
		Pluck("tenant_id", &tenants).Error
	if err != nil {
		return nil, r.errorClassifier.ToDomainError(err, errs.ErrNotFound)
	}
	return tenants, nil
}
