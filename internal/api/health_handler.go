package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unitrack/unimatch-api/internal/logger"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	HealthCheck() error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db     HealthChecker
	logger logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db HealthChecker, log logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: log}
}

// Health reports service and database status. A failing database turns
// the response into a 503 so load balancers stop routing to the instance.
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	status := http.StatusOK

	if err := h.db.HealthCheck(); err != nil {
		h.logger.Warn("Health check failed", "error", err.Error())
		dbStatus = "disconnected"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"healthy":   status == http.StatusOK,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
