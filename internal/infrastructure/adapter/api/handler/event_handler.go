package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// EventHandler receives payment events from the collaborator subsystems
type EventHandler struct {
	autoPosting usecase.AutoPostingUseCase
	logger      coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(autoPosting usecase.AutoPostingUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{autoPosting: autoPosting, logger: logger}
}

type paymentRecorder func(ctx context.Context, event usecase.PaymentEvent) (*entity.Transaction, error)

// AppointmentPayment handles POST /api/v1/ledger/events/appointment-payments
func (h *EventHandler) AppointmentPayment(c *gin.Context) {
	h.recordPayment(c, h.autoPosting.RecordAppointmentPayment)
}

// InvoicePayment handles POST /api/v1/ledger/events/invoice-payments
func (h *EventHandler) InvoicePayment(c *gin.Context) {
	h.recordPayment(c, h.autoPosting.RecordInvoicePayment)
}

// ReceiptPayment handles POST /api/v1/ledger/events/receipt-payments
func (h *EventHandler) ReceiptPayment(c *gin.Context) {
	h.recordPayment(c, h.autoPosting.RecordReceiptPayment)
}

// Reversal handles POST /api/v1/ledger/events/reversals
func (h *EventHandler) Reversal(c *gin.Context) {
	var req dto.ReversalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.autoPosting.ReverseDocumentPayment(c.Request.Context(), usecase.ReversalEvent{
		TenantID:      middleware.TenantID(c),
		DocumentKind:  req.DocumentKind,
		DocumentID:    req.DocumentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		CustomerRef:   req.CustomerRef,
		Reason:        req.Reason,
		EventID:       req.EventID,
		RecordedBy:    middleware.Actor(c),
	})
	if err != nil {
		respondError(c, h.logger, "Failed to record reversal", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

func (h *EventHandler) recordPayment(c *gin.Context, record paymentRecorder) {
	var req dto.PaymentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := record(c.Request.Context(), usecase.PaymentEvent{
		TenantID:      middleware.TenantID(c),
		DocumentID:    req.DocumentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		CustomerRef:   req.CustomerRef,
		Description:   req.Description,
		EventID:       req.EventID,
		RecordedBy:    middleware.Actor(c),
	})
	if err != nil {
		respondError(c, h.logger, "Failed to record payment event", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}
