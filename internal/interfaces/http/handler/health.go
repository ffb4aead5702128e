package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Olpagroup25/insa/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Pinger checks a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service can reach its database
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @ID           healthCheck
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthData
// @Failure      503 {object} HealthData
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthData{Status: "unhealthy", Database: "error"})
		return
	}
	c.JSON(http.StatusOK, HealthData{Status: "healthy", Database: "ok"})
}
