package database

import (
	"errors"
	"testing"

	domainErr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"nil", nil, nil},
		{"not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"postgres serialization", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"), domainErr.ErrConcurrencyConflict},
		{"mysql deadlock", errors.New("Error 1213: Deadlock found when trying to get lock"), domainErr.ErrConcurrencyConflict},
		{"sqlite busy", errors.New("database is locked"), domainErr.ErrConcurrencyConflict},
		{"duplicate", errors.New(`duplicate key value violates unique constraint "idx_transactions_tenant_number"`), domainErr.ErrDuplicateTransaction},
		{"connection", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), domainErr.ErrDatabaseConnection},
		{"timeout", errors.New("i/o timeout"), domainErr.ErrDatabaseConnection},
		{"other", errors.New("syntax error at or near"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapper.MapError(tc.err, "commit")
			if tc.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.expected)
		})
	}
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeTransaction), domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeBalanceAccount), domainErr.ErrBalanceAccountNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, "other"), domainErr.ErrNotFound)
	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeTransaction))
}
