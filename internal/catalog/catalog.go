// Package catalog holds the static reference data the pizza builder offers:
// the available sizes and ingredients. The data is embedded, loaded once at
// process start, and never mutated afterwards.
package catalog

import "github.com/franciscosanchezn/pizza-builder-api/internal/models"

var defaultSizes = []models.Size{
	{ID: "sm", Name: "Small", BasePrice: 6.50},
	{ID: "md", Name: "Medium", BasePrice: 8.75},
	{ID: "lg", Name: "Large", BasePrice: 10.90},
}

var defaultIngredients = []models.Ingredient{
	{ID: "cheese", Name: "Cheese", ExtraPrice: 1.25},
	{ID: "pepperoni", Name: "Pepperoni", ExtraPrice: 1.80},
	{ID: "olive", Name: "Olives", ExtraPrice: 0.90},
	{ID: "mushroom", Name: "Mushrooms", ExtraPrice: 1.10},
	{ID: "onion", Name: "Onion", ExtraPrice: 0.60},
	{ID: "bacon", Name: "Bacon", ExtraPrice: 2.10},
	{ID: "basil", Name: "Basil", ExtraPrice: 0.75},
	{ID: "pineapple", Name: "Pineapple", ExtraPrice: 1.40},
}

// Catalog exposes the read-only size and ingredient reference data
type Catalog struct {
	sizes       []models.Size
	ingredients []models.Ingredient
}

// New creates a Catalog seeded with the embedded reference data
func New() *Catalog {
	return &Catalog{
		sizes:       defaultSizes,
		ingredients: defaultIngredients,
	}
}

// Sizes returns the available sizes in catalog order. Callers must treat the
// slice as read-only.
func (c *Catalog) Sizes() []models.Size {
	return c.sizes
}

// Ingredients returns the available ingredients in catalog order. Callers
// must treat the slice as read-only.
func (c *Catalog) Ingredients() []models.Ingredient {
	return c.ingredients
}

// FindSize looks up a size by exact, case-sensitive identifier match
func (c *Catalog) FindSize(id string) (models.Size, bool) {
	for _, s := range c.sizes {
		if s.ID == id {
			return s, true
		}
	}
	return models.Size{}, false
}

// FindIngredient looks up an ingredient by exact, case-sensitive identifier match
func (c *Catalog) FindIngredient(id string) (models.Ingredient, bool) {
	for _, i := range c.ingredients {
		if i.ID == id {
			return i, true
		}
	}
	return models.Ingredient{}, false
}
