package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agency-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(err),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
					"tenant_id":  c.GetString(TenantIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					domainerr.ErrorCode(domainerr.ErrInternalServer), "Internal server error", c.GetString(RequestIDKey),
				))
			}
		}()

		c.Next()
	}
}
