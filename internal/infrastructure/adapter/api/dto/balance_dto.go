package dto

import (
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
)

// BalanceResponse represents the running balances of a tenant
type BalanceResponse struct {
	TenantID string `json:"tenantId"`
	Cash     string `json:"cash"`
	Card     string `json:"card"`
	Transfer string `json:"transfer"`
	Total    string `json:"total"`
}

// PeriodTotalsResponse aggregates active transactions of a period
type PeriodTotalsResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
	Count   int64  `json:"count"`
}

// ReconciliationResponse compares the ledger with the balance account
type ReconciliationResponse struct {
	Balanced bool            `json:"balanced"`
	Ledger   BalanceResponse `json:"ledger"`
	Account  BalanceResponse `json:"account"`
}

// SummaryResponse is the dashboard view of a tenant
type SummaryResponse struct {
	TenantID       string                 `json:"tenantId"`
	Current        BalanceResponse        `json:"current"`
	Today          PeriodTotalsResponse   `json:"today"`
	Month          PeriodTotalsResponse   `json:"month"`
	AllTime        PeriodTotalsResponse   `json:"allTime"`
	Reconciliation ReconciliationResponse `json:"reconciliation"`
	GeneratedAt    time.Time              `json:"generatedAt"`
}

// BreakdownRowResponse is one bucket of a statistics breakdown
type BreakdownRowResponse struct {
	Key     string `json:"key"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
	Count   int64  `json:"count"`
}

// StatisticsResponse groups active transactions by category, method and source
type StatisticsResponse struct {
	TenantID        string                 `json:"tenantId"`
	From            *time.Time             `json:"from,omitempty"`
	To              *time.Time             `json:"to,omitempty"`
	Totals          PeriodTotalsResponse   `json:"totals"`
	ByCategory      []BreakdownRowResponse `json:"byCategory"`
	ByPaymentMethod []BreakdownRowResponse `json:"byPaymentMethod"`
	BySource        []BreakdownRowResponse `json:"bySource"`
}

// NewBalanceResponse formats balances for the API
func NewBalanceResponse(tenantID string, b entity.Balances) BalanceResponse {
	return BalanceResponse{
		TenantID: tenantID,
		Cash:     entity.FormatCents(b.Cash),
		Card:     entity.FormatCents(b.Card),
		Transfer: entity.FormatCents(b.Transfer),
		Total:    entity.FormatCents(b.Total),
	}
}

func newPeriodTotals(p entity.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		Income:  entity.FormatCents(p.Income),
		Expense: entity.FormatCents(p.Expense),
		Net:     entity.FormatCents(p.Net()),
		Count:   p.Count,
	}
}

func newBreakdown(rows []entity.BreakdownRow) []BreakdownRowResponse {
	out := make([]BreakdownRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BreakdownRowResponse{
			Key:     r.Key,
			Income:  entity.FormatCents(r.Income),
			Expense: entity.FormatCents(r.Expense),
			Net:     entity.FormatCents(r.Net()),
			Count:   r.Count,
		})
	}
	return out
}

// NewSummaryResponse formats a balance summary for the API
func NewSummaryResponse(s *entity.BalanceSummary) SummaryResponse {
	return SummaryResponse{
		TenantID: s.TenantID,
		Current:  NewBalanceResponse(s.TenantID, s.Current),
		Today:    newPeriodTotals(s.Today),
		Month:    newPeriodTotals(s.Month),
		AllTime:  newPeriodTotals(s.AllTime),
		Reconciliation: ReconciliationResponse{
			Balanced: s.Reconciliation.Balanced,
			Ledger:   NewBalanceResponse(s.TenantID, s.Reconciliation.Ledger),
			Account:  NewBalanceResponse(s.TenantID, s.Reconciliation.Account),
		},
		GeneratedAt: s.GeneratedAt.UTC(),
	}
}

// NewStatisticsResponse formats statistics for the API
func NewStatisticsResponse(s *entity.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TenantID:        s.TenantID,
		From:            s.From,
		To:              s.To,
		Totals:          newPeriodTotals(s.Totals),
		ByCategory:      newBreakdown(s.ByCategory),
		ByPaymentMethod: newBreakdown(s.ByPaymentMethod),
		BySource:        newBreakdown(s.BySource),
	}
}
