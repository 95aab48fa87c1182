package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/agency-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// HealthChecker probes the store
type HealthChecker interface {
	CheckHealth(ctx context.Context, timeout time.Duration) database.HealthStatus
}

// HealthHandler reports service liveness and store health
type HealthHandler struct {
	checker HealthChecker
	version string
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.checker.CheckHealth(c.Request.Context(), healthTimeout)

	code, state := http.StatusOK, "ok"
	if !status.Healthy {
		code, state = http.StatusServiceUnavailable, "degraded"
	}

	c.JSON(code, gin.H{
		"status":   state,
		"version":  h.version,
		"database": status,
	})
}
