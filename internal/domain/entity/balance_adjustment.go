package entity

import (
	"time"

	"github.com/google/uuid"
)

// BalanceAdjustment is the compensating movement written when a transaction is
// cancelled. It is never listed as a transaction and never counted as income or expense.
type BalanceAdjustment struct {
	ID            uuid.UUID
	TenantID      string
	TransactionID uuid.UUID
	PaymentMethod PaymentMethod
	Delta         int64
	BalanceBefore int64
	BalanceAfter  int64
	Reason        string
	CreatedBy     string
	CreatedAt     time.Time
}

// NewReversalAdjustment builds the adjustment that undoes a transaction's effect
func NewReversalAdjustment(id uuid.UUID, tx *Transaction, before, after int64, reason, by string, at time.Time) *BalanceAdjustment {
	return &BalanceAdjustment{
		ID:            id,
		TenantID:      tx.TenantID,
		TransactionID: tx.ID,
		PaymentMethod: tx.PaymentMethod,
		Delta:         -tx.SignedAmount(),
		BalanceBefore: before,
		BalanceAfter:  after,
		Reason:        reason,
		CreatedBy:     by,
		CreatedAt:     at,
	}
}
