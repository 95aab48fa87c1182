package entity

import "time"

// PeriodTotals aggregates active transactions over a time window
type PeriodTotals struct {
	Income  int64
	Expense int64
	Count   int64
}

// Net returns income minus expense
func (p PeriodTotals) Net() int64 {
	return p.Income - p.Expense
}

// Reconciliation compares the signed sum of active transactions with the running balances
type Reconciliation struct {
	Ledger   Balances
	Account  Balances
	Balanced bool
}

// NewReconciliation compares both views per method and overall
func NewReconciliation(ledger, account Balances) Reconciliation {
	return Reconciliation{
		Ledger:   ledger,
		Account:  account,
		Balanced: ledger == account,
	}
}

// BalanceSummary is the dashboard view of a tenant's money
type BalanceSummary struct {
	TenantID       string
	Current        Balances
	Today          PeriodTotals
	Month          PeriodTotals
	AllTime        PeriodTotals
	Reconciliation Reconciliation
	GeneratedAt    time.Time
}

// BreakdownDimension names a column statistics can be grouped by
type BreakdownDimension string

// Breakdown dimensions
const (
	DimensionCategory      BreakdownDimension = "category"
	DimensionPaymentMethod BreakdownDimension = "payment_method"
	DimensionSource        BreakdownDimension = "source"
)

// BreakdownRow is one bucket of a statistics breakdown
type BreakdownRow struct {
	Key     string
	Income  int64
	Expense int64
	Count   int64
}

// Net returns income minus expense for the bucket
func (r BreakdownRow) Net() int64 {
	return r.Income - r.Expense
}

// Statistics groups active transactions of a window by category, method and source
type Statistics struct {
	TenantID        string
	From            *time.Time
	To              *time.Time
	Totals          PeriodTotals
	ByCategory      []BreakdownRow
	ByPaymentMethod []BreakdownRow
	BySource        []BreakdownRow
}
