package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var start = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func newRepos(t *testing.T) (*repository.BalanceRepository, *repository.TransactionRepository, *database.TestDBManager) {
	clock := timeprovider.NewManualTimeProvider(start)
	db := database.NewTestDBManager(t, clock)
	log := logger.NewNoopLogger()
	return repository.NewBalanceRepository(db.DB(), clock, log), repository.NewTransactionRepository(db.DB(), log), db
}

func newEntry(tenantID string, number int64, txType entity.TransactionType, amount int64, method entity.PaymentMethod) *entity.Transaction {
	req := entity.PostingRequest{
		TenantID:      tenantID,
		Type:          txType,
		Category:      entity.CategoryOther,
		Amount:        amount,
		PaymentMethod: method,
		Source:        entity.SourceManual,
		Description:   "entry",
		CreatedBy:     "clerk",
	}
	return entity.NewTransaction(uuid.New(), req, number, 0, req.SignedAmount(), start.Add(time.Duration(number)*time.Minute))
}

func TestBalanceRepository_GetForUpdateOpensAccount(t *testing.T) {
	balances, _, _ := newRepos(t)
	ctx := context.Background()

	_, err := balances.Get(ctx, "agency-1")
	assert.ErrorIs(t, err, errs.ErrBalanceAccountNotFound)

	account, err := balances.GetForUpdate(ctx, "agency-1")
	require.NoError(t, err)
	assert.Equal(t, entity.Balances{}, account.Snapshot())
	assert.Equal(t, int64(0), account.Version)

	again, err := balances.GetForUpdate(ctx, "agency-1")
	require.NoError(t, err)
	assert.Equal(t, account.Version, again.Version)

	tenants, err := balances.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agency-1"}, tenants)
}

func TestBalanceRepository_SaveIsVersionGuarded(t *testing.T) {
	balances, _, _ := newRepos(t)
	ctx := context.Background()

	first, err := balances.GetForUpdate(ctx, "agency-1")
	require.NoError(t, err)
	stale, err := balances.GetForUpdate(ctx, "agency-1")
	require.NoError(t, err)

	_, _, err = first.ApplyDelta(entity.MethodCard, 2500, start)
	require.NoError(t, err)
	require.NoError(t, balances.Save(ctx, first))
	assert.Equal(t, int64(1), first.Version)

	_, _, err = stale.ApplyDelta(entity.MethodCash, 100, start)
	require.NoError(t, err)
	err = balances.Save(ctx, stale)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	stored, err := balances.Get(ctx, "agency-1")
	require.NoError(t, err)
	assert.Equal(t, entity.Balances{Card: 2500, Total: 2500}, stored.Snapshot())
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	entry := newEntry("agency-1", 1, entity.TypeIncome, 4200, entity.MethodTransfer)
	entry.Source = entity.SourceAutomatic
	entry.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentInvoice, ID: "inv-3"}
	entry.IdempotencyKey = "evt-3"
	require.NoError(t, txns.Create(ctx, entry))

	got, err := txns.GetByID(ctx, "agency-1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "TRX-000001", got.Reference())
	assert.Equal(t, entry.LinkedDocument, got.LinkedDocument)
	assert.Equal(t, entry.CreatedAt, got.CreatedAt.UTC())
	assert.True(t, got.IsActive)

	byKey, err := txns.GetByIdempotencyKey(ctx, "agency-1", "evt-3")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, byKey.ID)

	_, err = txns.GetByID(ctx, "agency-2", entry.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_UniqueConstraints(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	require.NoError(t, txns.Create(ctx, newEntry("agency-1", 1, entity.TypeIncome, 100, entity.MethodCash)))

	err := txns.Create(ctx, newEntry("agency-1", 1, entity.TypeIncome, 100, entity.MethodCash))
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	// Numbering is per tenant
	require.NoError(t, txns.Create(ctx, newEntry("agency-2", 1, entity.TypeIncome, 100, entity.MethodCash)))

	keyed := newEntry("agency-1", 2, entity.TypeIncome, 100, entity.MethodCash)
	keyed.IdempotencyKey = "evt-1"
	require.NoError(t, txns.Create(ctx, keyed))

	replay := newEntry("agency-1", 3, entity.TypeIncome, 100, entity.MethodCash)
	replay.IdempotencyKey = "evt-1"
	err = txns.Create(ctx, replay)
	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
}

func TestTransactionRepository_MarkCancelledOnce(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	entry := newEntry("agency-1", 1, entity.TypeExpense, 900, entity.MethodCard)
	require.NoError(t, txns.Create(ctx, entry))

	require.NoError(t, entry.Cancel("typo", "manager", start.Add(time.Hour)))
	require.NoError(t, txns.MarkCancelled(ctx, entry))
	assert.ErrorIs(t, txns.MarkCancelled(ctx, entry), errs.ErrAlreadyCancelled)

	got, err := txns.GetByID(ctx, "agency-1", entry.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, int64(900), got.Amount)
	assert.Equal(t, "typo", got.CancellationReason)
	assert.Equal(t, "manager", got.CancelledBy)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, start.Add(time.Hour), got.CancelledAt.UTC())
}

func TestTransactionRepository_Aggregates(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	entries := []*entity.Transaction{
		newEntry("agency-1", 1, entity.TypeIncome, 10000, entity.MethodCash),
		newEntry("agency-1", 2, entity.TypeExpense, 2500, entity.MethodCash),
		newEntry("agency-1", 3, entity.TypeIncome, 4000, entity.MethodCard),
		newEntry("agency-1", 4, entity.TypeExpense, 700, entity.MethodTransfer),
	}
	for _, e := range entries {
		require.NoError(t, txns.Create(ctx, e))
	}
	cancelled := entries[3]
	require.NoError(t, cancelled.Cancel("wrong", "manager", start))
	require.NoError(t, txns.MarkCancelled(ctx, cancelled))

	totals, err := txns.SumByType(ctx, "agency-1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodTotals{Income: 14000, Expense: 2500, Count: 3}, totals)

	from, to := start.Add(2*time.Minute), start.Add(3*time.Minute)
	window, err := txns.SumByType(ctx, "agency-1", &from, &to)
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodTotals{Expense: 2500, Count: 1}, window)

	sums, err := txns.SignedSumByMethod(ctx, "agency-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7500), sums[entity.MethodCash])
	assert.Equal(t, int64(4000), sums[entity.MethodCard])
	assert.Equal(t, int64(0), sums[entity.MethodTransfer])

	rows, err := txns.Breakdown(ctx, "agency-1", entity.DimensionPaymentMethod, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []entity.BreakdownRow{
		{Key: "card", Income: 4000, Count: 1},
		{Key: "cash", Income: 10000, Expense: 2500, Count: 2},
	}, rows)

	_, err = txns.Breakdown(ctx, "agency-1", "customer_ref; DROP TABLE transactions", nil, nil)
	assert.ErrorIs(t, err, errs.ErrInvalidFilter)
}

func TestTransactionRepository_ListFilters(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		method := entity.MethodCash
		if i%2 == 0 {
			method = entity.MethodCard
		}
		require.NoError(t, txns.Create(ctx, newEntry("agency-1", i, entity.TypeIncome, 100*i, method)))
	}

	card := entity.MethodCard
	items, total, err := txns.List(ctx, entity.TransactionFilter{
		TenantID: "agency-1", PaymentMethod: &card, Status: entity.StatusAll, Page: 1, Limit: 10, SortOrder: entity.SortDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(4), items[0].TransactionNumber)

	items, total, err = txns.List(ctx, entity.TransactionFilter{
		TenantID: "agency-1", Status: entity.StatusAll, Page: 2, Limit: 2, SortOrder: entity.SortAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, items, 2)
	assert.Equal(t, int64(3), items[0].TransactionNumber)

	items, total, err = txns.List(ctx, entity.TransactionFilter{
		TenantID: "agency-1", Search: "trx-000005", Status: entity.StatusAll, Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(5), items[0].TransactionNumber)

	items, total, err = txns.List(ctx, entity.TransactionFilter{
		TenantID: "agency-1", Status: entity.StatusCancelled, Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}

func TestTransactionRepository_SearchMatchesWildcardsLiterally(t *testing.T) {
	_, txns, _ := newRepos(t)
	ctx := context.Background()

	descriptions := []string{"50% deposit", "visa_fee", "walk-in", "refund!", "entry"}
	for i, d := range descriptions {
		e := newEntry("agency-1", int64(i+1), entity.TypeIncome, 100, entity.MethodCash)
		e.Description = d
		require.NoError(t, txns.Create(ctx, e))
	}

	testCases := []struct {
		search   string
		expected []string
	}{
		{"%", []string{"50% deposit"}},
		{"_", []string{"visa_fee"}},
		{"!", []string{"refund!"}},
		{"a_f", []string{"visa_fee"}},
		{"50%", []string{"50% deposit"}},
		{"1_0", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.search, func(t *testing.T) {
			items, total, err := txns.List(ctx, entity.TransactionFilter{
				TenantID: "agency-1", Search: tc.search, Status: entity.StatusAll, Page: 1, Limit: 10,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.expected)), total)
			var got []string
			for _, item := range items {
				got = append(got, item.Description)
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestErrorClassifier_ToDomainError(t *testing.T) {
	c := repository.NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"not found", gorm.ErrRecordNotFound, errs.ErrTransactionNotFound},
		{"postgres duplicate", errors.New(`duplicate key value violates unique constraint "x"`), errs.ErrDuplicateTransaction},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: transactions.id"), errs.ErrDuplicateTransaction},
		{"mysql duplicate", errors.New("Error 1062: Duplicate entry 'a' for key 'b'"), errs.ErrDuplicateTransaction},
		{"deadlock", errors.New("ERROR: deadlock detected"), errs.ErrConcurrencyConflict},
		{"serialization", errors.New("could not serialize access due to concurrent update"), errs.ErrConcurrencyConflict},
		{"sqlite busy", errors.New("database is locked"), errs.ErrConcurrencyConflict},
		{"connection", errors.New("dial tcp 127.0.0.1:5432: connection refused"), errs.ErrDatabaseConnection},
		{"not null", errors.New("NOT NULL constraint failed: transactions.tenant_id"), errs.ErrConstraintViolation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, c.ToDomainError(tc.err, errs.ErrTransactionNotFound), tc.expected)
		})
	}

	assert.NoError(t, c.ToDomainError(nil, errs.ErrNotFound))
	assert.Empty(t, c.Classify(errors.New("syntax error")))
}
