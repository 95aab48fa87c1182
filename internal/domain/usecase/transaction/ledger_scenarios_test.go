package transaction

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database"
	timeprovider "github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerHarness struct {
	db      *database.TestDBManager
	service *Service
	clock   *timeprovider.ManualTimeProvider
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	clock := timeprovider.NewManualTimeProvider(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	db := database.NewTestDBManager(t, clock)
	service := NewTransactionService(db.UnitOfWork(), cache.NewNoopSummaryCache(), clock, newQuietLogger(t), Config{
		QueueSize: 16,
		Retry:     fastRetry(5),
	})
	t.Cleanup(service.Shutdown)
	return &ledgerHarness{db: db, service: service, clock: clock}
}

func (h *ledgerHarness) post(t *testing.T, draft entity.TransactionDraft) *entity.Transaction {
	t.Helper()
	txn, err := h.service.Post(context.Background(), draft)
	require.NoError(t, err)
	return txn
}

func (h *ledgerHarness) balances(t *testing.T, tenantID string) *entity.BalanceAccount {
	t.Helper()
	ctx := context.Background()
	account, err := h.db.UnitOfWork().GetBalanceRepository(ctx).Get(ctx, tenantID)
	require.NoError(t, err)
	return account
}

func (h *ledgerHarness) entries(t *testing.T, tenantID string) []*entity.Transaction {
	t.Helper()
	ctx := context.Background()
	items, _, err := h.db.UnitOfWork().GetTransactionRepository(ctx).List(ctx, entity.TransactionFilter{
		TenantID: tenantID, Status: entity.StatusAll, Page: 1, Limit: entity.MaxPageLimit, SortOrder: entity.SortAsc,
	})
	require.NoError(t, err)
	return items
}

func draft(tenantID, txType, category, amount, method string) entity.TransactionDraft {
	return entity.TransactionDraft{
		TenantID: tenantID, Type: txType, Category: category, Amount: amount,
		PaymentMethod: method, Source: "manual",
	}
}

func TestLedger_ManualExpenseScenario(t *testing.T) {
	h := newLedgerHarness(t)

	deposit := h.post(t, draft("agency-1", "income", "deposit", "100.00", "cash"))
	h.clock.Advance(time.Minute)
	expense := h.post(t, draft("agency-1", "expense", "expense", "50.00", "cash"))

	assert.Equal(t, int64(1), deposit.TransactionNumber)
	assert.Equal(t, int64(0), deposit.BalanceBefore)
	assert.Equal(t, int64(10000), deposit.BalanceAfter)

	assert.Equal(t, int64(2), expense.TransactionNumber)
	assert.Equal(t, int64(10000), expense.BalanceBefore)
	assert.Equal(t, int64(5000), expense.BalanceAfter)

	account := h.balances(t, "agency-1")
	assert.Equal(t, int64(5000), account.Cash)
	assert.Equal(t, int64(0), account.Card)
	assert.Equal(t, int64(5000), account.Total)
	assert.NoError(t, account.CheckInvariant())
}

func TestLedger_AutomaticAppointmentPayment(t *testing.T) {
	h := newLedgerHarness(t)

	d := draft("agency-1", "income", "appointment_payment", "250.75", "card")
	d.Source = "automatic"
	d.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentAppointment, ID: "apt-42"}
	d.CustomerRef = "cust-9"
	txn := h.post(t, d)

	stored := h.entries(t, "agency-1")
	require.Len(t, stored, 1)
	assert.Equal(t, txn.ID, stored[0].ID)
	assert.Equal(t, entity.SourceAutomatic, stored[0].Source)
	require.NotNil(t, stored[0].LinkedDocument)
	assert.Equal(t, "appointment:apt-42", stored[0].LinkedDocument.String())

	account := h.balances(t, "agency-1")
	assert.Equal(t, int64(25075), account.Card)
	assert.Equal(t, int64(25075), account.Total)
}

func TestLedger_RejectedEntryConsumesNoNumber(t *testing.T) {
	h := newLedgerHarness(t)

	d := draft("agency-1", "income", "appointment_payment", "10.00", "card")
	d.Source = "automatic"
	_, err := h.service.Post(context.Background(), d)
	require.ErrorIs(t, err, errs.ErrMissingLinkedDocument)

	_, err = h.service.Post(context.Background(), draft("agency-1", "income", "deposit", "10.001", "cash"))
	require.ErrorIs(t, err, errs.ErrInvalidAmount)

	txn := h.post(t, draft("agency-1", "income", "deposit", "10.00", "cash"))
	assert.Equal(t, int64(1), txn.TransactionNumber)
	assert.Len(t, h.entries(t, "agency-1"), 1)
}

func TestLedger_ConcurrentPostsKeepNumberingAndBalances(t *testing.T) {
	h := newLedgerHarness(t)
	methods := []string{"cash", "card", "transfer"}
	const posts = 30

	var wg sync.WaitGroup
	errCh := make(chan error, posts)
	for i := 0; i < posts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := draft("agency-1", "income", "deposit", fmt.Sprintf("%d.00", i+1), methods[i%3])
			if i%5 == 0 {
				d.Type, d.Category = "expense", "expense"
			}
			_, err := h.service.Post(context.Background(), d)
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	stored := h.entries(t, "agency-1")
	require.Len(t, stored, posts)

	numbers := make([]int, 0, posts)
	var signed int64
	perMethod := map[entity.PaymentMethod]int64{}
	for _, txn := range stored {
		numbers = append(numbers, int(txn.TransactionNumber))
		signed += txn.SignedAmount()
		perMethod[txn.PaymentMethod] += txn.SignedAmount()
		assert.Equal(t, txn.BalanceBefore+txn.SignedAmount(), txn.BalanceAfter)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		assert.Equal(t, i+1, n)
	}

	account := h.balances(t, "agency-1")
	assert.NoError(t, account.CheckInvariant())
	assert.Equal(t, signed, account.Total)
	assert.Equal(t, perMethod[entity.MethodCash], account.Cash)
	assert.Equal(t, perMethod[entity.MethodCard], account.Card)
	assert.Equal(t, perMethod[entity.MethodTransfer], account.Transfer)
	assert.Equal(t, int64(posts), account.LastTransactionNumber)
}

func TestLedger_CancellationReversesOnce(t *testing.T) {
	h := newLedgerHarness(t)

	h.post(t, draft("agency-1", "income", "deposit", "80.00", "transfer"))
	expense := h.post(t, draft("agency-1", "expense", "salary", "30.00", "transfer"))

	h.clock.Advance(time.Hour)
	cancelled, err := h.service.Cancel(context.Background(), usecase.CancelRequest{
		TenantID: "agency-1", TransactionID: expense.ID, Reason: "entered twice", CancelledBy: "manager",
	})
	require.NoError(t, err)
	assert.False(t, cancelled.IsActive)

	account := h.balances(t, "agency-1")
	assert.Equal(t, int64(8000), account.Transfer)
	assert.Equal(t, int64(8000), account.Total)
	assert.Equal(t, int64(2), account.LastTransactionNumber)

	_, err = h.service.Cancel(context.Background(), usecase.CancelRequest{
		TenantID: "agency-1", TransactionID: expense.ID, Reason: "again",
	})
	assert.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	assert.Equal(t, int64(8000), h.balances(t, "agency-1").Total)

	stored := h.entries(t, "agency-1")
	require.Len(t, stored, 2)
	assert.False(t, stored[1].IsActive)
	assert.Equal(t, int64(3000), stored[1].Amount)
	assert.Equal(t, int64(8000), stored[1].BalanceBefore)
	assert.Equal(t, int64(5000), stored[1].BalanceAfter)
	assert.Equal(t, "entered twice", stored[1].CancellationReason)

	var adjustments int64
	require.NoError(t, h.db.DB().Table("balance_adjustments").Count(&adjustments).Error)
	assert.Equal(t, int64(1), adjustments)
}

func TestLedger_AutomaticEntriesCannotBeCancelled(t *testing.T) {
	h := newLedgerHarness(t)

	d := draft("agency-1", "income", "invoice_payment", "40.00", "cash")
	d.Source = "automatic"
	d.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentInvoice, ID: "inv-1"}
	txn := h.post(t, d)

	_, err := h.service.Cancel(context.Background(), usecase.CancelRequest{
		TenantID: "agency-1", TransactionID: txn.ID, Reason: "customer complained",
	})
	assert.ErrorIs(t, err, errs.ErrAutomaticNotCancellable)
	assert.Equal(t, int64(4000), h.balances(t, "agency-1").Cash)
}

func TestLedger_CancelUnknownTransaction(t *testing.T) {
	h := newLedgerHarness(t)
	txn := h.post(t, draft("agency-1", "income", "deposit", "1.00", "cash"))

	_, err := h.service.Cancel(context.Background(), usecase.CancelRequest{
		TenantID: "agency-2", TransactionID: txn.ID, Reason: "wrong tenant",
	})
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestLedger_IdempotentEventsPostOnce(t *testing.T) {
	h := newLedgerHarness(t)

	d := draft("agency-1", "income", "other", "15.00", "cash")
	d.Source = "automatic"
	d.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentReceipt, ID: "rcp-1"}
	d.IdempotencyKey = "evt-77"

	first := h.post(t, d)
	second := h.post(t, d)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, h.entries(t, "agency-1"), 1)
	assert.Equal(t, int64(1500), h.balances(t, "agency-1").Total)
}

func TestLedger_ReusedEventKeyForAnotherPaymentIsRejected(t *testing.T) {
	h := newLedgerHarness(t)

	appointment := draft("agency-1", "income", "appointment_payment", "100.00", "cash")
	appointment.Source = "automatic"
	appointment.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentAppointment, ID: "apt-1"}
	appointment.IdempotencyKey = "evt-1"
	first := h.post(t, appointment)

	invoice := draft("agency-1", "income", "invoice_payment", "500.00", "card")
	invoice.Source = "automatic"
	invoice.LinkedDocument = &entity.LinkedDocument{Kind: entity.DocumentInvoice, ID: "inv-9"}
	invoice.IdempotencyKey = "evt-1"
	txn, err := h.service.Post(context.Background(), invoice)

	assert.Nil(t, txn)
	require.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	assert.Contains(t, err.Error(), first.Reference())

	account := h.balances(t, "agency-1")
	assert.Equal(t, int64(10000), account.Cash)
	assert.Equal(t, int64(0), account.Card)
	assert.Len(t, h.entries(t, "agency-1"), 1)
}

func TestLedger_TenantsAreIsolated(t *testing.T) {
	h := newLedgerHarness(t)

	a := h.post(t, draft("agency-1", "income", "deposit", "5.00", "cash"))
	b := h.post(t, draft("agency-2", "income", "deposit", "7.00", "card"))

	assert.Equal(t, int64(1), a.TransactionNumber)
	assert.Equal(t, int64(1), b.TransactionNumber)
	assert.Equal(t, int64(500), h.balances(t, "agency-1").Total)
	assert.Equal(t, int64(700), h.balances(t, "agency-2").Total)
}
