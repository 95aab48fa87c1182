package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// TransactionType is the direction of a money movement
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Category classifies what a money movement was for
type Category string

// Categories
const (
	CategoryAppointmentPayment Category = "appointment_payment"
	CategoryInvoicePayment     Category = "invoice_payment"
	CategoryExpense            Category = "expense"
	CategorySalary             Category = "salary"
	CategoryCommission         Category = "commission"
	CategoryRefund             Category = "refund"
	CategoryDeposit            Category = "deposit"
	CategoryWithdrawal         Category = "withdrawal"
	CategoryOther              Category = "other"
)

// PaymentMethod is the channel the money moved through
type PaymentMethod string

// Payment methods
const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

// Source tells whether an entry was typed by a user or produced by a collaborator event
type Source string

// Sources
const (
	SourceManual    Source = "manual"
	SourceAutomatic Source = "automatic"
)

// DocumentKind identifies the collaborator record a transaction is linked to
type DocumentKind string

// Document kinds
const (
	DocumentAppointment DocumentKind = "appointment"
	DocumentInvoice     DocumentKind = "invoice"
	DocumentReceipt     DocumentKind = "receipt"
)

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryAppointmentPayment, CategoryInvoicePayment, CategoryExpense, CategorySalary,
	CategoryCommission, CategoryRefund, CategoryDeposit, CategoryWithdrawal, CategoryOther,
}

// AllPaymentMethods lists every payment method in display order
var AllPaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodTransfer}

// ParseTransactionType converts a raw string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.TrimSpace(s)); t {
	case TypeIncome, TypeExpense:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidType, s)
	}
}

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errs.ErrInvalidCategory, s)
}

// ParsePaymentMethod converts a raw string into a PaymentMethod
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.TrimSpace(s)); m {
	case MethodCash, MethodCard, MethodTransfer:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidPaymentMethod, s)
	}
}

// ParseSource converts a raw string into a Source
func ParseSource(s string) (Source, error) {
	switch src := Source(strings.TrimSpace(s)); src {
	case SourceManual, SourceAutomatic:
		return src, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidSource, s)
	}
}

// ParseDocumentKind converts a raw string into a DocumentKind
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch k := DocumentKind(strings.TrimSpace(s)); k {
	case DocumentAppointment, DocumentInvoice, DocumentReceipt:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidLinkedDocument, s)
	}
}

// ExpectedType returns the type a category pairs with, if it has a fixed direction
func (c Category) ExpectedType() (TransactionType, bool) {
	switch c {
	case CategoryAppointmentPayment, CategoryInvoicePayment, CategoryDeposit:
		return TypeIncome, true
	case CategoryExpense, CategorySalary, CategoryCommission, CategoryWithdrawal:
		return TypeExpense, true
	default:
		return "", false
	}
}

// LinkedDocument references the collaborator record behind an automatic entry
type LinkedDocument struct {
	Kind DocumentKind
	ID   string
}

// String renders the document as kind:id
func (d LinkedDocument) String() string {
	return string(d.Kind) + ":" + d.ID
}

// TransactionDraft is the raw, unvalidated input of a post
type TransactionDraft struct {
	TenantID       string
	Type           string
	Category       string
	Amount         string
	PaymentMethod  string
	Source         string
	Description    string
	Notes          string
	CustomerRef    string
	LinkedDocument *LinkedDocument
	IdempotencyKey string
	CreatedBy      string
}

// PostingRequest is a draft that passed validation, ready for the posting unit
type PostingRequest struct {
	TenantID       string
	Type           TransactionType
	Category       Category
	Amount         int64
	PaymentMethod  PaymentMethod
	Source         Source
	Description    string
	Notes          string
	CustomerRef    string
	LinkedDocument *LinkedDocument
	IdempotencyKey string
	CreatedBy      string
}

// SignedAmount returns +amount for income and -amount for expense
func (r PostingRequest) SignedAmount() int64 {
	if r.Type == TypeExpense {
		return -r.Amount
	}
	return r.Amount
}

// Transaction is a posted ledger entry. Financial fields never change after posting;
// only the active flag and the cancellation metadata do.
type Transaction struct {
	ID                 uuid.UUID
	TenantID           string
	TransactionNumber  int64
	Type               TransactionType
	Category           Category
	Amount             int64 // minor units, always positive
	PaymentMethod      PaymentMethod
	Source             Source
	Description        string
	Notes              string
	CustomerRef        string
	LinkedDocument     *LinkedDocument
	IdempotencyKey     string
	BalanceBefore      int64
	BalanceAfter       int64
	IsActive           bool
	CancelledAt        *time.Time
	CancellationReason string
	CancelledBy        string
	CreatedBy          string
	CreatedAt          time.Time
}

// NewTransaction builds the entry for a validated request once its number and snapshots are known
func NewTransaction(id uuid.UUID, req PostingRequest, number, balanceBefore, balanceAfter int64, createdAt time.Time) *Transaction {
	return &Transaction{
		ID:                id,
		TenantID:          req.TenantID,
		TransactionNumber: number,
		Type:              req.Type,
		Category:          req.Category,
		Amount:            req.Amount,
		PaymentMethod:     req.PaymentMethod,
		Source:            req.Source,
		Description:       req.Description,
		Notes:             req.Notes,
		CustomerRef:       req.CustomerRef,
		LinkedDocument:    req.LinkedDocument,
		IdempotencyKey:    req.IdempotencyKey,
		BalanceBefore:     balanceBefore,
		BalanceAfter:      balanceAfter,
		IsActive:          true,
		CreatedBy:         req.CreatedBy,
		CreatedAt:         createdAt,
	}
}

// FormatReference renders a transaction number in its display form, e.g. TRX-000042
func FormatReference(number int64) string {
	return fmt.Sprintf("TRX-%06d", number)
}

// Reference returns the display reference of the transaction
func (t *Transaction) Reference() string {
	return FormatReference(t.TransactionNumber)
}

// SignedAmount returns the effect this entry had on the total balance
func (t *Transaction) SignedAmount() int64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// IsAutomatic reports whether the entry was produced by a collaborator event
func (t *Transaction) IsAutomatic() bool {
	return t.Source == SourceAutomatic
}

// Cancel deactivates the entry and records who cancelled it and why
func (t *Transaction) Cancel(reason, cancelledBy string, at time.Time) error {
	if !t.IsActive {
		return errs.ErrAlreadyCancelled
	}
	t.IsActive = false
	t.CancelledAt = &at
	t.CancellationReason = reason
	t.CancelledBy = cancelledBy
	return nil
}
