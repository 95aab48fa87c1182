package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
)

// Adapter translates collaborator payment events into automatic posts. It adds
// nothing the engine does not enforce itself; it only fixes type, category and link.
type Adapter struct {
	poster usecase.PostingUseCase
	logger coreport.Logger
}

var _ usecase.AutoPostingUseCase = (*Adapter)(nil)

// NewAdapter creates a new automatic-posting adapter
func NewAdapter(poster usecase.PostingUseCase, logger coreport.Logger) *Adapter {
	return &Adapter{poster: poster, logger: logger}
}

// RecordAppointmentPayment posts the income of a paid appointment
func (a *Adapter) RecordAppointmentPayment(ctx context.Context, event usecase.PaymentEvent) (*entity.Transaction, error) {
	return a.recordIncome(ctx, event, entity.CategoryAppointmentPayment, entity.DocumentAppointment)
}

// RecordInvoicePayment posts the income of a paid invoice
func (a *Adapter) RecordInvoicePayment(ctx context.Context, event usecase.PaymentEvent) (*entity.Transaction, error) {
	return a.recordIncome(ctx, event, entity.CategoryInvoicePayment, entity.DocumentInvoice)
}

// RecordReceiptPayment posts the income of an issued receipt
func (a *Adapter) RecordReceiptPayment(ctx context.Context, event usecase.PaymentEvent) (*entity.Transaction, error) {
	return a.recordIncome(ctx, event, entity.CategoryOther, entity.DocumentReceipt)
}

// ReverseDocumentPayment posts the equal-and-opposite refund of a document payment
func (a *Adapter) ReverseDocumentPayment(ctx context.Context, event usecase.ReversalEvent) (*entity.Transaction, error) {
	kind := entity.DocumentKind(strings.TrimSpace(event.DocumentKind))

	description := fmt.Sprintf("Reversal of %s %s", kind, strings.TrimSpace(event.DocumentID))
	draft := entity.TransactionDraft{
		TenantID:       event.TenantID,
		Type:           string(entity.TypeExpense),
		Category:       string(entity.CategoryRefund),
		Amount:         event.Amount,
		PaymentMethod:  event.PaymentMethod,
		Source:         string(entity.SourceAutomatic),
		Description:    description,
		Notes:          event.Reason,
		CustomerRef:    event.CustomerRef,
		LinkedDocument: &entity.LinkedDocument{Kind: kind, ID: event.DocumentID},
		IdempotencyKey: event.EventID,
		CreatedBy:      event.RecordedBy,
	}

	txn, err := a.poster.Post(ctx, draft)
	if err != nil {
		return nil, err
	}

	a.logger.Info("Document payment reversed", map[string]any{
		"tenant_id":      txn.TenantID,
		"document":       txn.LinkedDocument.String(),
		"transaction_id": txn.ID.String(),
		"amount":         entity.FormatCents(txn.Amount),
	})
	return txn, nil
}

func (a *Adapter) recordIncome(
	ctx context.Context,
	event usecase.PaymentEvent,
	category entity.Category,
	kind entity.DocumentKind,
) (*entity.Transaction, error) {
	description := strings.TrimSpace(event.Description)
	if description == "" {
		description = fmt.Sprintf("Payment for %s %s", kind, strings.TrimSpace(event.DocumentID))
	}

	draft := entity.TransactionDraft{
		TenantID:       event.TenantID,
		Type:           string(entity.TypeIncome),
		Category:       string(category),
		Amount:         event.Amount,
		PaymentMethod:  event.PaymentMethod,
		Source:         string(entity.SourceAutomatic),
		Description:    description,
		CustomerRef:    event.CustomerRef,
		LinkedDocument: &entity.LinkedDocument{Kind: kind, ID: event.DocumentID},
		IdempotencyKey: event.EventID,
		CreatedBy:      event.RecordedBy,
	}

	txn, err := a.poster.Post(ctx, draft)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Collaborator payment recorded", map[string]any{
		"tenant_id":      txn.TenantID,
		"document":       txn.LinkedDocument.String(),
		"transaction_id": txn.ID.String(),
	})
	return txn, nil
}
