package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeTransaction represents the ledger entry entity
	EntityTypeTransaction EntityType = "transaction"
	// EntityTypeBalanceAccount represents the per-tenant balance account
	EntityTypeBalanceAccount EntityType = "balance_account"
)

// ErrorMapper maps database errors raised outside the repositories (begin, commit, ping) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Serialization failures and deadlocks are resolved by retrying the unit
	case m.classifier.IsLockError(err):
		return fmt.Errorf("%w: %s: %v", domainErr.ErrConcurrencyConflict, operation, err)

	case m.classifier.IsDuplicateKeyError(err):
		return domainErr.ErrDuplicateTransaction

	case m.classifier.IsConstraintError(err):
		return domainErr.ErrConstraintViolation

	case m.classifier.IsConnectionError(err):
		return domainErr.ErrDatabaseConnection

	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return fmt.Errorf("%w: %s: %v", domainErr.ErrInternalServer, operation, err)
	}
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		case EntityTypeBalanceAccount:
			return domainErr.ErrBalanceAccountNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
