package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionExporter renders transactions as a downloadable file
type TransactionExporter interface {
	FileName(tenantID string, now time.Time) string
	WriteTransactions(w io.Writer, txs []*entity.Transaction) error
}

// TransactionHandler handles ledger entry HTTP requests
type TransactionHandler struct {
	posting      usecase.PostingUseCase
	query        usecase.QueryUseCase
	exporter     TransactionExporter
	contentType  string
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(
	posting usecase.PostingUseCase,
	query usecase.QueryUseCase,
	exporter TransactionExporter,
	contentType string,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		posting:      posting,
		query:        query,
		exporter:     exporter,
		contentType:  contentType,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateTransaction handles POST /api/v1/ledger/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.posting.Post(c.Request.Context(), entity.TransactionDraft{
		TenantID:      middleware.TenantID(c),
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Source:        string(entity.SourceManual),
		Description:   req.Description,
		Notes:         req.Notes,
		CustomerRef:   req.CustomerRef,
		CreatedBy:     middleware.Actor(c),
	})
	if err != nil {
		respondError(c, h.logger, "Failed to post transaction", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// CancelTransaction handles POST /api/v1/ledger/transactions/:id/cancel
func (h *TransactionHandler) CancelTransaction(c *gin.Context) {
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	var req dto.CancelTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "Invalid cancellation request", domainerr.ErrCancellationReasonRequired)
		return
	}

	txn, err := h.posting.Cancel(c.Request.Context(), usecase.CancelRequest{
		TenantID:      middleware.TenantID(c),
		TransactionID: id,
		Reason:        req.Reason,
		CancelledBy:   middleware.Actor(c),
	})
	if err != nil {
		respondError(c, h.logger, "Failed to cancel transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

// ListTransactions handles GET /api/v1/ledger/transactions
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	page, err := h.query.ListTransactions(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		respondError(c, h.logger, "Failed to list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(page))
}

// ExportTransactions handles GET /api/v1/ledger/transactions/export
func (h *TransactionHandler) ExportTransactions(c *gin.Context) {
	tenantID := middleware.TenantID(c)
	items, err := h.query.ExportTransactions(c.Request.Context(), queryFromRequest(c))
	if err != nil {
		respondError(c, h.logger, "Failed to export transactions", err)
		return
	}

	// Render fully before writing headers so a failure still yields a JSON error
	var buf bytes.Buffer
	if err := h.exporter.WriteTransactions(&buf, items); err != nil {
		respondError(c, h.logger, "Failed to render export", fmt.Errorf("%w: %v", domainerr.ErrInternalServer, err))
		return
	}

	fileName := h.exporter.FileName(tenantID, h.timeProvider.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, h.contentType, buf.Bytes())

	h.logger.Info("Transactions exported", map[string]any{
		"tenant_id": tenantID,
		"rows":      len(items),
		"file":      fileName,
	})
}

// GetTransaction handles GET /api/v1/ledger/transactions/:id
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	txn, err := h.query.GetTransaction(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get transaction", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}

func parseTransactionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest), "Invalid transaction ID format", c.GetString(middleware.RequestIDKey),
		))
		return uuid.Nil, false
	}
	return id, true
}

func queryFromRequest(c *gin.Context) usecase.TransactionQuery {
	return usecase.TransactionQuery{
		TenantID:      middleware.TenantID(c),
		Type:          c.Query("type"),
		Category:      c.Query("category"),
		PaymentMethod: c.Query("paymentMethod"),
		Source:        c.Query("source"),
		Status:        c.Query("status"),
		CustomerRef:   c.Query("customerRef"),
		Search:        c.Query("search"),
		From:          c.Query("from"),
		To:            c.Query("to"),
		Page:          c.Query("page"),
		Limit:         c.Query("limit"),
		SortOrder:     c.Query("sortOrder"),
	}
}
