package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/persistence"
)

// IdempotencyHandler replays the transaction already posted for a collaborator event key
type IdempotencyHandler struct{}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler() *IdempotencyHandler {
	return &IdempotencyHandler{}
}

// CheckIdempotency looks up a previous post with the request's key.
// A hit is only replayed when it records the same movement; a key reused for a
// different movement is ErrDuplicateTransaction.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	repo persistence.TransactionRepository,
	req entity.PostingRequest,
) (*entity.Transaction, bool, error) {
	if req.IdempotencyKey == "" {
		return nil, false, nil
	}

	txn, err := repo.GetByIdempotencyKey(ctx, req.TenantID, req.IdempotencyKey)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if field, stored, incoming := firstDifference(txn, req); field != "" {
		return nil, false, fmt.Errorf("%w: key %q already posted %s with %s %s, got %s",
			errs.ErrDuplicateTransaction, req.IdempotencyKey, txn.Reference(), field, stored, incoming)
	}
	return txn, true, nil
}

// firstDifference names the first movement field where the stored entry and the request disagree
func firstDifference(txn *entity.Transaction, req entity.PostingRequest) (field, stored, incoming string) {
	switch {
	case txn.Type != req.Type:
		return "type", string(txn.Type), string(req.Type)
	case txn.Category != req.Category:
		return "category", string(txn.Category), string(req.Category)
	case txn.Amount != req.Amount:
		return "amount", entity.FormatCents(txn.Amount), entity.FormatCents(req.Amount)
	case txn.PaymentMethod != req.PaymentMethod:
		return "payment method", string(txn.PaymentMethod), string(req.PaymentMethod)
	case txn.Source != req.Source:
		return "source", string(txn.Source), string(req.Source)
	}
	if a, b := documentString(txn.LinkedDocument), documentString(req.LinkedDocument); a != b {
		return "linked document", a, b
	}
	return "", "", ""
}

func documentString(d *entity.LinkedDocument) string {
	if d == nil {
		return "none"
	}
	return d.String()
}
