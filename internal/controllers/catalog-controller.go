package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-builder-api/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogController serves the static size and ingredient reference data
type CatalogController interface {
	// GetSizes retrieves the available pizza sizes
	GetSizes(c *gin.Context)
	// GetIngredients retrieves the available ingredients
	GetIngredients(c *gin.Context)
}

type catalogController struct {
	catalog *catalog.Catalog
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(cat *catalog.Catalog) *catalogController {
	return &catalogController{catalog: cat}
}

// GetSizes godoc
// @Summary List available sizes
// @Description Get the catalog of pizza sizes with base prices
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Size
// @Router /sizes [get]
func (c *catalogController) GetSizes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalog.Sizes())
}

// GetIngredients godoc
// @Summary List available ingredients
// @Description Get the catalog of ingredients with extra prices
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Ingredient
// @Router /ingredients [get]
func (c *catalogController) GetIngredients(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalog.Ingredients())
}
