package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
)

// CoffeeService is the coffee use-case layer consumed by the handler.
type CoffeeService interface {
	ListCoffees(ctx context.Context) ([]model.Coffee, error)
	GetCoffee(ctx context.Context, id primitive.ObjectID) (model.Coffee, error)
	CreateCoffee(ctx context.Context, coffee model.Coffee) (model.InsertResult, error)
	UpdateCoffee(ctx context.Context, id primitive.ObjectID, fields model.CoffeeFields) (model.UpdateResult, error)
	DeleteCoffee(ctx context.Context, id primitive.ObjectID) (model.DeleteResult, error)
}

// Coffee serves the /coffees routes.
type Coffee struct {
	coffeeService CoffeeService
	logger        *logger.Logger
}

// NewCoffee creates a new Coffee handler.
func NewCoffee(coffeeService CoffeeService, logger *logger.Logger) *Coffee {
	return &Coffee{
		coffeeService: coffeeService,
		logger:        logger,
	}
}

// ListCoffees handles GET /coffees.
func (h *Coffee) ListCoffees(c *gin.Context) {
	coffees, err := h.coffeeService.ListCoffees(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, coffees)
}

// GetCoffee handles GET /coffees/:id.
func (h *Coffee) GetCoffee(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	coffee, err := h.coffeeService.GetCoffee(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, coffee)
}

// CreateCoffee handles POST /coffees. The body must be a JSON object and is
// stored as submitted.
func (h *Coffee) CreateCoffee(c *gin.Context) {
	var coffee model.Coffee
	if err := c.ShouldBindJSON(&coffee); err != nil {
		handleError(c, h.logger, model.NewErrInvalidBody(err.Error()))
		return
	}
	if coffee == nil {
		handleError(c, h.logger, model.NewErrInvalidBody("expected a JSON object"))
		return
	}

	res, err := h.coffeeService.CreateCoffee(c.Request.Context(), coffee)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// UpdateCoffee handles PUT /coffees/:id. Only the seven coffee fields are
// written; anything else in the body is ignored.
func (h *Coffee) UpdateCoffee(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var fields model.CoffeeFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		handleError(c, h.logger, model.NewErrInvalidBody(err.Error()))
		return
	}

	res, err := h.coffeeService.UpdateCoffee(c.Request.Context(), id, fields)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// DeleteCoffee handles DELETE /coffees/:id.
func (h *Coffee) DeleteCoffee(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	res, err := h.coffeeService.DeleteCoffee(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
