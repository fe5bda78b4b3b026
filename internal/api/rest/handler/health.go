package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health serves liveness and readiness routes.
type Health struct {
	pinger Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Root handles GET /.
func (h *Health) Root(c *gin.Context) {
	c.String(http.StatusOK, "Espresso Emporium Server is running!")
}

// Check handles GET /health.
func (h *Health) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn("database ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}
