package usecase

import (
	"context"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
)

// PaymentEvent is a payment reported by a collaborator subsystem
type PaymentEvent struct {
	TenantID      string
	DocumentID    string
	Amount        string
	PaymentMethod string
	CustomerRef   string
	Description   string
	EventID       string
	RecordedBy    string
}

// ReversalEvent is a collaborator taking back a payment it reported earlier
type ReversalEvent struct {
	TenantID      string
	DocumentKind  string
	DocumentID    string
	Amount        string
	PaymentMethod string
	CustomerRef   string
	Reason        string
	EventID       string
	RecordedBy    string
}

// AutoPostingUseCase turns collaborator events into automatic ledger entries
type AutoPostingUseCase interface {
	RecordAppointmentPayment(ctx context.Context, event PaymentEvent) (*entity.Transaction, error)
	RecordInvoicePayment(ctx context.Context, event PaymentEvent) (*entity.Transaction, error)
	RecordReceiptPayment(ctx context.Context, event PaymentEvent) (*entity.Transaction, error)
	ReverseDocumentPayment(ctx context.Context, event ReversalEvent) (*entity.Transaction, error)
}
