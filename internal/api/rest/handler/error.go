package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func handleError(c *gin.Context, logger *logger.Logger, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Code, ErrorResponse{Error: apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
