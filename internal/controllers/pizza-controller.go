package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
	"github.com/franciscosanchezn/pizza-builder-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizza orders
type PizzaController interface {
	// GetAllPizzas retrieves all pizza orders, optionally filtered and sorted
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza order by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza order
	CreatePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *controller {
	return &controller{service: service}
}

// statusCoder is implemented by errors that map to a specific HTTP status
type statusCoder interface {
	StatusCode() int
}

// httpStatus resolves the response status for an error, defaulting to 500
func httpStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// GetAllPizzas godoc
// @Summary List pizza orders
// @Description Get all pizza orders with optional filtering and sorting
// @Tags pizzas
// @Accept json
// @Produce json
// @Param customerName query string false "Filter by customer name (case-insensitive substring match)"
// @Param sortBy query string false "Sort field: finalPrice or createdAt (anything else keeps insertion order)"
// @Param order query string false "Sort direction: asc (default) or desc"
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	opts := services.ListOptions{
		CustomerName: ctx.Query("customerName"),
		SortBy:       ctx.Query("sortBy"),
		Order:        ctx.Query("order"),
	}

	pizzas, err := c.service.ListPizzas(opts)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizzas"})
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get a pizza order by ID
// @Description Get a single pizza order by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaView
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	// A non-numeric id cannot match any order, so it gets the same 404 as a
	// missing one.
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
		return
	}

	pizza, found, err := c.service.GetPizzaByID(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza"})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a pizza order
// @Description Assemble a pizza from a size and a set of ingredients, compute its price and store the order
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaRequest true "Pizza selection"
// @Success 201 {object} models.PizzaView
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req models.CreatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "customerName is required"})
		return
	}
	if strings.TrimSpace(req.SizeID) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "sizeId is required"})
		return
	}
	ingredientIDs, ok := req.IngredientList()
	if !ok || len(ingredientIDs) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ingredientIds must be a non-empty array of strings"})
		return
	}

	pizza, err := c.service.CreatePizza(req.CustomerName, strings.TrimSpace(req.SizeID), ingredientIDs)
	if err != nil {
		ctx.JSON(httpStatus(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}
