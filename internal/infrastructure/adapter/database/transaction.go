package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type unitKey struct{}

var errNoUnit = errors.New("context carries no open ledger unit")

// UnitOfWork runs ledger units on gorm transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	errorMapper  *ErrorMapper
}

// NewUnitOfWork returns the gorm backed unit of work
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		errorMapper:  NewErrorMapper(),
	}
}

// Begin opens a unit. Postgres units run SERIALIZABLE; mysql and sqlite units rely on
// the balance row lock alone.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	driver := u.db.Dialector.Name()

	tx := u.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		u.logger.Error("Could not open ledger unit", map[string]any{"driver": driver, "error": err.Error()})
		return ctx, fmt.Errorf("open ledger unit: %w", u.errorMapper.MapError(err, "begin"))
	}

	if driver == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Could not raise ledger unit isolation", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("raise ledger unit isolation: %w", u.errorMapper.MapError(err, "begin"))
		}
	}

	u.logger.Debug("Ledger unit opened", map[string]any{"driver": driver})
	return context.WithValue(ctx, unitKey{}, tx), nil
}

// Commit makes the unit's writes visible
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := unitFrom(ctx)
	if tx == nil {
		return errNoUnit
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Could not commit ledger unit", map[string]any{"error": err.Error()})
		return fmt.Errorf("commit ledger unit: %w", u.errorMapper.MapError(err, "commit"))
	}
	u.logger.Debug("Ledger unit committed", nil)
	return nil
}

// Rollback discards the unit's writes
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := unitFrom(ctx)
	if tx == nil {
		return errNoUnit
	}

	err := tx.Rollback().Error
	switch {
	case err == nil:
		u.logger.Debug("Ledger unit rolled back", nil)
		return nil
	case errors.Is(err, sql.ErrTxDone), errors.Is(err, gorm.ErrInvalidTransaction):
		// commit or rollback already ended it
		return nil
	default:
		u.logger.Error("Could not roll back ledger unit", map[string]any{"error": err.Error()})
		return fmt.Errorf("roll back ledger unit: %w", err)
	}
}

// GetTransactionRepository returns the transaction repository for ctx
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.scoped(ctx), u.logger)
}

// GetBalanceRepository returns the balance repository for ctx
func (u *UnitOfWork) GetBalanceRepository(ctx context.Context) persistence.BalanceRepository {
	return repository.NewBalanceRepository(u.scoped(ctx), u.timeProvider, u.logger)
}

func (u *UnitOfWork) scoped(ctx context.Context) *gorm.DB {
	if tx := unitFrom(ctx); tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

func unitFrom(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(unitKey{}).(*gorm.DB)
	return tx
}
