package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys and headers of the request scope
const (
	TenantIDKey  = "tenant_id"
	ActorKey     = "actor"
	TenantHeader = "X-Tenant-ID"
	ActorHeader  = "X-User-ID"
	maxTenantLen = 64
)

// Tenant resolves the tenant of a request from X-Tenant-ID, falling back to defaultTenant.
// The acting user is taken from X-User-ID.
func Tenant(defaultTenant string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			tenantID = defaultTenant
		}
		if tenantID == "" || len(tenantID) > maxTenantLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				domainerr.ErrorCode(domainerr.ErrInvalidTenant), "Missing or invalid header: "+TenantHeader, c.GetString(RequestIDKey),
			))
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Set(ActorKey, strings.TrimSpace(c.GetHeader(ActorHeader)))
		c.Next()
	}
}

// TenantID returns the tenant resolved for the request
func TenantID(c *gin.Context) string {
	return c.GetString(TenantIDKey)
}

// Actor returns the acting user of the request, empty when none was sent
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
