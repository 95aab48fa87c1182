package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
)

// Balances is a point-in-time view of a tenant's channels in minor units
type Balances struct {
	Cash     int64
	Card     int64
	Transfer int64
	Total    int64
}

// Method returns the sub-balance of one payment method
func (b Balances) Method(method PaymentMethod) int64 {
	switch method {
	case MethodCash:
		return b.Cash
	case MethodCard:
		return b.Card
	case MethodTransfer:
		return b.Transfer
	default:
		return 0
	}
}

// BalanceAccount holds the running balances of one tenant. It is only mutated
// inside a posting unit while its row is locked.
type BalanceAccount struct {
	TenantID              string
	Cash                  int64
	Card                  int64
	Transfer              int64
	Total                 int64
	Version               int64
	LastTransactionNumber int64
	UpdatedAt             time.Time
}

// NewBalanceAccount creates a zeroed account for a tenant that has never posted
func NewBalanceAccount(tenantID string, now time.Time) *BalanceAccount {
	return &BalanceAccount{TenantID: tenantID, UpdatedAt: now}
}

// Snapshot returns a copy of the current balances
func (a *BalanceAccount) Snapshot() Balances {
	return Balances{Cash: a.Cash, Card: a.Card, Transfer: a.Transfer, Total: a.Total}
}

// CheckInvariant verifies that total equals the sum of the sub-balances
func (a *BalanceAccount) CheckInvariant() error {
	if a.Cash+a.Card+a.Transfer != a.Total {
		return &errs.InvariantError{
			TenantID: a.TenantID,
			Cash:     a.Cash,
			Card:     a.Card,
			Transfer: a.Transfer,
			Total:    a.Total,
		}
	}
	return nil
}

// ApplyDelta moves the method's sub-balance by a signed amount, recomputes the
// total and returns the total before and after. The account is left untouched on error.
func (a *BalanceAccount) ApplyDelta(method PaymentMethod, signed int64, now time.Time) (before, after int64, err error) {
	if err := a.CheckInvariant(); err != nil {
		return 0, 0, err
	}

	var current int64
	switch method {
	case MethodCash:
		current = a.Cash
	case MethodCard:
		current = a.Card
	case MethodTransfer:
		current = a.Transfer
	default:
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidPaymentMethod, method)
	}

	updated, err := addCents(current, signed)
	if err != nil {
		return 0, 0, err
	}
	total, err := addCents(a.Total, signed)
	if err != nil {
		return 0, 0, err
	}

	before = a.Total
	switch method {
	case MethodCash:
		a.Cash = updated
	case MethodCard:
		a.Card = updated
	case MethodTransfer:
		a.Transfer = updated
	}
	a.Total = a.Cash + a.Card + a.Transfer
	a.UpdatedAt = now

	if a.Total != total {
		return 0, 0, a.CheckInvariant()
	}
	return before, a.Total, nil
}

// NextTransactionNumber allocates the next sequential number for the tenant
func (a *BalanceAccount) NextTransactionNumber() int64 {
	a.LastTransactionNumber++
	return a.LastTransactionNumber
}
