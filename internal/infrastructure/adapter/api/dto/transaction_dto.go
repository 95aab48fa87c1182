package dto

import (
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
)

// CreateTransactionRequest is the body of a manual post. Amounts are decimal strings.
type CreateTransactionRequest struct {
	Type          string `json:"type" binding:"required,oneof=income expense"`
	Category      string `json:"category" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Description   string `json:"description" binding:"max=500"`
	Notes         string `json:"notes"`
	CustomerRef   string `json:"customerRef" binding:"max=64"`
}

// CancelTransactionRequest is the body of a cancellation
type CancelTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// LinkedDocumentResponse references the collaborator record behind an automatic entry
type LinkedDocumentResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// TransactionResponse is the API view of a ledger entry
type TransactionResponse struct {
	ID                 string                  `json:"id"`
	Reference          string                  `json:"reference"`
	TransactionNumber  int64                   `json:"transactionNumber"`
	Type               string                  `json:"type"`
	Category           string                  `json:"category"`
	Amount             string                  `json:"amount"`
	PaymentMethod      string                  `json:"paymentMethod"`
	Source             string                  `json:"source"`
	Description        string                  `json:"description,omitempty"`
	Notes              string                  `json:"notes,omitempty"`
	CustomerRef        string                  `json:"customerRef,omitempty"`
	LinkedDocument     *LinkedDocumentResponse `json:"linkedDocument,omitempty"`
	BalanceBefore      string                  `json:"balanceBefore"`
	BalanceAfter       string                  `json:"balanceAfter"`
	IsActive           bool                    `json:"isActive"`
	CancelledAt        *time.Time              `json:"cancelledAt,omitempty"`
	CancellationReason string                  `json:"cancellationReason,omitempty"`
	CancelledBy        string                  `json:"cancelledBy,omitempty"`
	CreatedBy          string                  `json:"createdBy"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// TransactionListResponse is one page of a listing
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"totalPages"`
}

// NewTransactionResponse converts a ledger entry for the API
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                 t.ID.String(),
		Reference:          t.Reference(),
		TransactionNumber:  t.TransactionNumber,
		Type:               string(t.Type),
		Category:           string(t.Category),
		Amount:             entity.FormatCents(t.Amount),
		PaymentMethod:      string(t.PaymentMethod),
		Source:             string(t.Source),
		Description:        t.Description,
		Notes:              t.Notes,
		CustomerRef:        t.CustomerRef,
		BalanceBefore:      entity.FormatCents(t.BalanceBefore),
		BalanceAfter:       entity.FormatCents(t.BalanceAfter),
		IsActive:           t.IsActive,
		CancelledAt:        t.CancelledAt,
		CancellationReason: t.CancellationReason,
		CancelledBy:        t.CancelledBy,
		CreatedBy:          t.CreatedBy,
		CreatedAt:          t.CreatedAt.UTC(),
	}
	if t.LinkedDocument != nil {
		resp.LinkedDocument = &LinkedDocumentResponse{Kind: string(t.LinkedDocument.Kind), ID: t.LinkedDocument.ID}
	}
	return resp
}

// NewTransactionListResponse converts a listing page for the API
func NewTransactionListResponse(page *entity.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, NewTransactionResponse(t))
	}
	return TransactionListResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages(),
	}
}
