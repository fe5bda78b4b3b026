package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-Id"
	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "request_id"
)

// RequestID keeps a client-supplied X-Request-Id or generates one.
func RequestID(c *gin.Context) {
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}

	c.Set(RequestIDKey, rid)
	c.Header(RequestIDHeader, rid)
	c.Next()
}
