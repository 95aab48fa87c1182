package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount              = 4001
	CodeInvalidType                = 4002
	CodeInvalidCategory            = 4003
	CodeInvalidPaymentMethod       = 4004
	CodeInvalidSource              = 4005
	CodeMissingLinkedDocument      = 4006
	CodeUnexpectedLinkedDocument   = 4007
	CodeInvalidLinkedDocument      = 4008
	CodeCategoryTypeMismatch       = 4009
	CodeCancellationReasonRequired = 4010
	CodeInvalidFilter              = 4011
	CodeAmountOverflow             = 4012
	CodeInvalidTenant              = 4013
	CodeInvalidRequest             = 4014
	CodeTransactionNotFound        = 4040
	CodeAlreadyCancelled           = 4090
	CodeConcurrencyConflict        = 4091
	CodeAutomaticNotCancellable    = 4092
	CodeDuplicateTransaction       = 4093

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeBalanceInvariant   = 5001
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is malformed, not positive or has more than two decimals
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when an amount or a resulting balance cannot be represented
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidType is returned when the transaction type is not income or expense
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidCategory is returned when the category is not one of the known categories
	ErrInvalidCategory = errors.New("invalid transaction category")

	// ErrInvalidPaymentMethod is returned when the payment method is not cash, card or transfer
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidSource is returned when the source is not manual or automatic
	ErrInvalidSource = errors.New("invalid transaction source")

	// ErrMissingLinkedDocument is returned when an automatic entry carries no linked document
	ErrMissingLinkedDocument = errors.New("automatic transaction requires a linked document")

	// ErrUnexpectedLinkedDocument is returned when a manual entry carries a linked document
	ErrUnexpectedLinkedDocument = errors.New("manual transaction cannot carry a linked document")

	// ErrInvalidLinkedDocument is returned when the linked document kind or id is not usable
	ErrInvalidLinkedDocument = errors.New("invalid linked document")

	// ErrCategoryTypeMismatch is returned when pairing is enforced and the category contradicts the type
	ErrCategoryTypeMismatch = errors.New("category does not match transaction type")

	// ErrCancellationReasonRequired is returned when a cancellation has no reason
	ErrCancellationReasonRequired = errors.New("cancellation reason is required")

	// ErrInvalidFilter is returned when a listing filter value is malformed
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidTenant is returned when no tenant could be resolved for a request
	ErrInvalidTenant = errors.New("tenant ID cannot be empty")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist for the tenant
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBalanceAccountNotFound is returned when a tenant has never posted
	ErrBalanceAccountNotFound = errors.New("balance account not found")

	// ErrAlreadyCancelled is returned when a transaction has already been cancelled
	ErrAlreadyCancelled = errors.New("transaction already cancelled")

	// ErrAutomaticNotCancellable is returned when cancelling an entry owned by a collaborator
	ErrAutomaticNotCancellable = errors.New("automatic transactions are reversed by their source document")

	// ErrConcurrencyConflict is returned when a concurrent writer changed the balance account first
	ErrConcurrencyConflict = errors.New("concurrent modification of balance account")

	// ErrDuplicateTransaction is returned when an insert hits a unique key or an
	// idempotency key is reused for a different movement
	ErrDuplicateTransaction = errors.New("transaction already exists")

	// ErrBalanceInvariantViolated is returned when total no longer equals the sum of the sub-balances
	ErrBalanceInvariantViolated = errors.New("balance invariant violated")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

var validationErrors = []error{
	ErrInvalidAmount,
	ErrAmountOverflow,
	ErrInvalidType,
	ErrInvalidCategory,
	ErrInvalidPaymentMethod,
	ErrInvalidSource,
	ErrMissingLinkedDocument,
	ErrUnexpectedLinkedDocument,
	ErrInvalidLinkedDocument,
	ErrCategoryTypeMismatch,
	ErrCancellationReasonRequired,
	ErrInvalidFilter,
	ErrInvalidTenant,
	ErrInvalidRequest,
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidType):
		return CodeInvalidType
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrInvalidPaymentMethod):
		return CodeInvalidPaymentMethod
	case errors.Is(err, ErrInvalidSource):
		return CodeInvalidSource
	case errors.Is(err, ErrMissingLinkedDocument):
		return CodeMissingLinkedDocument
	case errors.Is(err, ErrUnexpectedLinkedDocument):
		return CodeUnexpectedLinkedDocument
	case errors.Is(err, ErrInvalidLinkedDocument):
		return CodeInvalidLinkedDocument
	case errors.Is(err, ErrCategoryTypeMismatch):
		return CodeCategoryTypeMismatch
	case errors.Is(err, ErrCancellationReasonRequired):
		return CodeCancellationReasonRequired
	case errors.Is(err, ErrInvalidFilter):
		return CodeInvalidFilter
	case errors.Is(err, ErrInvalidTenant):
		return CodeInvalidTenant
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrAlreadyCancelled):
		return CodeAlreadyCancelled
	case errors.Is(err, ErrConcurrencyConflict):
		return CodeConcurrencyConflict
	case errors.Is(err, ErrAutomaticNotCancellable):
		return CodeAutomaticNotCancellable
	case errors.Is(err, ErrDuplicateTransaction):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrBalanceInvariantViolated):
		return CodeBalanceInvariant
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// PostingError represents a rejected or failed post
type PostingError struct {
	TenantID      string
	Type          string
	Category      string
	PaymentMethod string
	Source        string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for PostingError
func (e *PostingError) Error() string {
	return fmt.Sprintf("posting failed for tenant %s (%s/%s, amount: %s, method: %s): %s - %v",
		e.TenantID, e.Type, e.Category, e.Amount, e.PaymentMethod, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PostingError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PostingError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "posting_error",
		"tenant_id":      e.TenantID,
		"type":           e.Type,
		"category":       e.Category,
		"payment_method": e.PaymentMethod,
		"source":         e.Source,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPostingError creates a detailed posting error
func NewPostingError(tenantID, txType, category, method, source, amount, reason string, err error) error {
	return &PostingError{
		TenantID:      tenantID,
		Type:          txType,
		Category:      category,
		PaymentMethod: method,
		Source:        source,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// CancellationError represents a rejected or failed cancellation
type CancellationError struct {
	TenantID      string
	TransactionID string
	Reason        string
	Err           error
}

// Error implements the error interface for CancellationError
func (e *CancellationError) Error() string {
	return fmt.Sprintf("cancellation of transaction %s failed for tenant %s: %v",
		e.TransactionID, e.TenantID, e.Err)
}

// Unwrap returns the underlying error
func (e *CancellationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CancellationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "cancellation_error",
		"tenant_id":      e.TenantID,
		"transaction_id": e.TransactionID,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewCancellationError creates a detailed cancellation error
func NewCancellationError(tenantID, transactionID, reason string, err error) error {
	return &CancellationError{
		TenantID:      tenantID,
		TransactionID: transactionID,
		Reason:        reason,
		Err:           err,
	}
}

// FilterError describes a listing filter that could not be parsed
type FilterError struct {
	Field string
	Value string
}

// Error implements the error interface
func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %s=%q", e.Field, e.Value)
}

// Is checks if the target error is an ErrInvalidFilter
func (e *FilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// LogFields returns a map of fields for structured logging
func (e *FilterError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_filter",
		"field":      e.Field,
		"value":      e.Value,
		"error_code": CodeInvalidFilter,
	}
}

// NewFilterError creates a new filter error for the given field
func NewFilterError(field, value string) error {
	return &FilterError{Field: field, Value: value}
}

// InvariantError carries the balances observed when total drifted from its parts
type InvariantError struct {
	TenantID string
	Cash     int64
	Card     int64
	Transfer int64
	Total    int64
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	return fmt.Sprintf("balance invariant violated for tenant %s: cash=%d card=%d transfer=%d total=%d",
		e.TenantID, e.Cash, e.Card, e.Transfer, e.Total)
}

// Is checks if the target error is an ErrBalanceInvariantViolated
func (e *InvariantError) Is(target error) bool {
	return target == ErrBalanceInvariantViolated
}

// LogFields returns a map of fields for structured logging
func (e *InvariantError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "balance_invariant",
		"tenant_id":  e.TenantID,
		"cash":       e.Cash,
		"card":       e.Card,
		"transfer":   e.Transfer,
		"total":      e.Total,
		"error_code": CodeBalanceInvariant,
	}
}

// IsValidationError reports whether err was produced by input validation
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBalanceAccountNotFound)
}

// IsAlreadyCancelledError checks if the error reports a repeated cancellation
func IsAlreadyCancelledError(err error) bool {
	return errors.Is(err, ErrAlreadyCancelled)
}

// IsConcurrencyConflictError checks if the error is retryable contention on the balance account
func IsConcurrencyConflictError(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}
