package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// Logging logs one record per HTTP request.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleHTTP logs method, route, status and duration once the request completes.
func (l *Logging) HandleHTTP(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	args := []any{
		"method", c.Request.Method,
		"path", path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", c.GetString(RequestIDKey),
	}

	if status >= http.StatusInternalServerError {
		l.logger.Error("HTTP request failed", args...)
		return
	}
	l.logger.Info("HTTP request completed", args...)
}
