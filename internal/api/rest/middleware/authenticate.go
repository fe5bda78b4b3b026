package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

// SubjectKey is the gin context key holding the authenticated subject.
const SubjectKey = "subject"

// TokenParser resolves the subject of a bearer token.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// Authenticate rejects requests without a valid bearer token.
type Authenticate struct {
	tokenParser TokenParser
	logger      *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, logger: logger}
}

// HandleHTTP validates the Authorization header and stores the subject in
// the gin context.
func (m *Authenticate) HandleHTTP(c *gin.Context) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if tokenString == "" {
		m.reject(c, "missing token")
		return
	}

	subject, err := m.tokenParser.ParseAccessToken(tokenString)
	if err != nil {
		m.reject(c, err.Error())
		return
	}

	c.Set(SubjectKey, subject)
	c.Next()
}

func (m *Authenticate) reject(c *gin.Context, reason string) {
	m.logger.Warn("request rejected",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reason", reason)
	apiErr := model.NewErrUnauthorized()
	c.AbortWithStatusJSON(apiErr.Code, gin.H{"error": apiErr.Message})
}
