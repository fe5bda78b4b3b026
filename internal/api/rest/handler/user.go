package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

// UserService is the user use-case layer consumed by the handler.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.InsertResult, error)
}

// User serves the /users routes.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles GET /users.
func (h *User) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users. The body must be a JSON object; its shape
// is not checked.
func (h *User) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		handleError(c, h.logger, model.NewErrInvalidBody(err.Error()))
		return
	}
	if user == nil {
		handleError(c, h.logger, model.NewErrInvalidBody("expected a JSON object"))
		return
	}

	res, err := h.userService.CreateUser(c.Request.Context(), user)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
