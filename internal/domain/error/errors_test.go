package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, CodeInvalidAmount},
		{"AmountOverflow", ErrAmountOverflow, CodeAmountOverflow},
		{"MissingLinkedDocument", ErrMissingLinkedDocument, CodeMissingLinkedDocument},
		{"InvalidFilter", ErrInvalidFilter, CodeInvalidFilter},
		{"NotFound", ErrTransactionNotFound, CodeTransactionNotFound},
		{"AlreadyCancelled", ErrAlreadyCancelled, CodeAlreadyCancelled},
		{"ConcurrencyConflict", ErrConcurrencyConflict, CodeConcurrencyConflict},
		{"AutomaticNotCancellable", ErrAutomaticNotCancellable, CodeAutomaticNotCancellable},
		{"DuplicateTransaction", fmt.Errorf("key reused: %w", ErrDuplicateTransaction), CodeDuplicateTransaction},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidPaymentMethod), CodeInvalidPaymentMethod},
		{"FilterError", NewFilterError("limit", "abc"), CodeInvalidFilter},
		{"InvariantError", &InvariantError{TenantID: "t1"}, CodeBalanceInvariant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestPostingError(t *testing.T) {
	err := NewPostingError("agency-1", "income", "deposit", "cash", "manual", "-5", "validation failed", ErrInvalidAmount)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), "agency-1")
	assert.Contains(t, err.Error(), "invalid amount")

	var postingErr *PostingError
	assert.True(t, errors.As(err, &postingErr))
	fields := postingErr.LogFields()
	assert.Equal(t, "posting_error", fields["error_type"])
	assert.Equal(t, CodeInvalidAmount, fields["error_code"])
	assert.Equal(t, "cash", fields["payment_method"])
}

func TestCancellationError(t *testing.T) {
	err := NewCancellationError("agency-1", "3f0c", "duplicate", ErrAlreadyCancelled)

	assert.True(t, IsAlreadyCancelledError(err))
	assert.False(t, IsNotFoundError(err))

	var cancelErr *CancellationError
	assert.True(t, errors.As(err, &cancelErr))
	assert.Equal(t, CodeAlreadyCancelled, cancelErr.LogFields()["error_code"])
}

func TestFilterError(t *testing.T) {
	err := NewFilterError("from", "yesterday")

	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Equal(t, `invalid filter from="yesterday"`, err.Error())
	assert.True(t, IsValidationError(err))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(fmt.Errorf("x: %w", ErrCategoryTypeMismatch)))
	assert.True(t, IsValidationError(ErrCancellationReasonRequired))
	assert.False(t, IsValidationError(ErrConcurrencyConflict))
	assert.False(t, IsValidationError(ErrTransactionNotFound))
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{TenantID: "t1", Cash: 100, Card: 0, Transfer: 0, Total: 50}

	assert.ErrorIs(t, err, ErrBalanceInvariantViolated)
	assert.Equal(t, int64(50), err.LogFields()["total"])
}
