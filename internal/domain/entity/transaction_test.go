package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	t.Run("Transaction type", func(t *testing.T) {
		got, err := ParseTransactionType("expense")
		require.NoError(t, err)
		assert.Equal(t, TypeExpense, got)

		_, err = ParseTransactionType("transferral")
		assert.ErrorIs(t, err, errs.ErrInvalidType)
	})

	t.Run("Category", func(t *testing.T) {
		for _, c := range AllCategories {
			got, err := ParseCategory(string(c))
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
		_, err := ParseCategory("bonus")
		assert.ErrorIs(t, err, errs.ErrInvalidCategory)
	})

	t.Run("Payment method", func(t *testing.T) {
		_, err := ParsePaymentMethod("crypto")
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("Source", func(t *testing.T) {
		_, err := ParseSource("import")
		assert.ErrorIs(t, err, errs.ErrInvalidSource)
	})

	t.Run("Document kind", func(t *testing.T) {
		got, err := ParseDocumentKind("receipt")
		require.NoError(t, err)
		assert.Equal(t, DocumentReceipt, got)

		_, err = ParseDocumentKind("quote")
		assert.ErrorIs(t, err, errs.ErrInvalidLinkedDocument)
	})
}

func TestCategoryExpectedType(t *testing.T) {
	expected, fixed := CategorySalary.ExpectedType()
	assert.True(t, fixed)
	assert.Equal(t, TypeExpense, expected)

	expected, fixed = CategoryInvoicePayment.ExpectedType()
	assert.True(t, fixed)
	assert.Equal(t, TypeIncome, expected)

	_, fixed = CategoryRefund.ExpectedType()
	assert.False(t, fixed)
	_, fixed = CategoryOther.ExpectedType()
	assert.False(t, fixed)
}

func TestNewTransaction(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	req := PostingRequest{
		TenantID:      "agency-1",
		Type:          TypeExpense,
		Category:      CategoryExpense,
		Amount:        25000,
		PaymentMethod: MethodCash,
		Source:        SourceManual,
		Description:   "Office supplies",
		CreatedBy:     "u1",
	}

	tx := NewTransaction(id, req, 42, 100000, 75000, createdAt)

	assert.Equal(t, id, tx.ID)
	assert.Equal(t, "TRX-000042", tx.Reference())
	assert.Equal(t, int64(-25000), tx.SignedAmount())
	assert.Equal(t, tx.SignedAmount(), tx.BalanceAfter-tx.BalanceBefore)
	assert.True(t, tx.IsActive)
	assert.False(t, tx.IsAutomatic())
	assert.Nil(t, tx.CancelledAt)
	assert.Equal(t, createdAt, tx.CreatedAt)
}

func TestTransactionCancel(t *testing.T) {
	tx := &Transaction{IsActive: true, Type: TypeIncome, Amount: 100}
	at := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, tx.Cancel("duplicate", "u2", at))
	assert.False(t, tx.IsActive)
	assert.Equal(t, "duplicate", tx.CancellationReason)
	assert.Equal(t, "u2", tx.CancelledBy)
	require.NotNil(t, tx.CancelledAt)
	assert.Equal(t, at, *tx.CancelledAt)

	err := tx.Cancel("again", "u3", at.Add(time.Hour))
	assert.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	assert.Equal(t, "duplicate", tx.CancellationReason)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "TRX-000001", FormatReference(1))
	assert.Equal(t, "TRX-1234567", FormatReference(1234567))
}

func TestTransactionPage(t *testing.T) {
	assert.Equal(t, 0, TransactionPage{Total: 0, Limit: 20}.TotalPages())
	assert.Equal(t, 1, TransactionPage{Total: 20, Limit: 20}.TotalPages())
	assert.Equal(t, 3, TransactionPage{Total: 41, Limit: 20}.TotalPages())

	assert.Equal(t, 0, TransactionFilter{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, TransactionFilter{Page: 3, Limit: 20}.Offset())
	assert.Positive(t, TransactionFilter{Page: math.MaxInt, Limit: 100}.Offset())
	assert.Equal(t, (MaxPage(100)-1)*100, TransactionFilter{Page: math.MaxInt, Limit: 100}.Offset())
}
