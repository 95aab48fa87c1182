package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// BalanceHandler serves balances, summaries and statistics
type BalanceHandler struct {
	query  usecase.QueryUseCase
	logger coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(query usecase.QueryUseCase, logger coreport.Logger) *BalanceHandler {
	return &BalanceHandler{query: query, logger: logger}
}

// GetBalance handles GET /api/v1/ledger/balance
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	tenantID := middleware.TenantID(c)
	balances, err := h.query.GetCurrentBalances(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, h.logger, "Failed to get balances", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(tenantID, balances))
}

// GetSummary handles GET /api/v1/ledger/summary
func (h *BalanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.query.GetBalanceSummary(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		respondError(c, h.logger, "Failed to get balance summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// GetStatistics handles GET /api/v1/ledger/statistics
func (h *BalanceHandler) GetStatistics(c *gin.Context) {
	stats, err := h.query.GetStatistics(c.Request.Context(), middleware.TenantID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, h.logger, "Failed to get statistics", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatisticsResponse(stats))
}
