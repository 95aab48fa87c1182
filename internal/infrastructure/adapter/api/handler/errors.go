package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// StatusCode maps a domain error to its HTTP status
func StatusCode(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrAlreadyCancelled),
		errors.Is(err, domainerr.ErrAutomaticNotCancellable),
		errors.Is(err, domainerr.ErrConcurrencyConflict),
		errors.Is(err, domainerr.ErrDuplicateTransaction):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response; internal details are logged, never returned
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := StatusCode(err)
	requestID := c.GetString(middleware.RequestIDKey)
	_ = c.Error(err)

	if status >= http.StatusInternalServerError {
		logger.Error(message, map[string]any{
			"path":       c.FullPath(),
			"tenant_id":  middleware.TenantID(c),
			"request_id": requestID,
			"error":      err.Error(),
		})
		c.JSON(status, dto.NewErrorResponse(domainerr.ErrorCode(err), http.StatusText(status), requestID))
		return
	}

	c.JSON(status, dto.NewErrorResponse(domainerr.ErrorCode(err), err.Error(), requestID))
}

// respondBindError reports a body that could not be decoded or failed binding rules
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		domainerr.ErrorCode(domainerr.ErrInvalidRequest), "Invalid request format: "+err.Error(), c.GetString(middleware.RequestIDKey),
	))
}
