package models

import (
	"encoding/json"
	"time"
)

// Size represents a pizza size offered by the catalog
type Size struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

// Ingredient represents a topping offered by the catalog
type Ingredient struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ExtraPrice float64 `json:"extraPrice"`
}

// Pizza is a stored order: one customer's selection plus the price computed
// at creation time. The size and ingredients are kept as catalog identifiers
// and resolved into full objects whenever a PizzaView is built.
type Pizza struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customerName"`
	SizeID        string    `json:"sizeId"`
	IngredientIDs []string  `json:"ingredientIds"`
	FinalPrice    float64   `json:"finalPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PizzaView is a Pizza joined with live catalog data for presentation
type PizzaView struct {
	ID           int          `json:"id"`
	CustomerName string       `json:"customerName"`
	Size         Size         `json:"size"`
	Ingredients  []Ingredient `json:"ingredients"`
	FinalPrice   float64      `json:"finalPrice"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// CreatePizzaRequest is the body of POST /pizzas. IngredientIDs stays raw so
// the handler can tell "absent, null, or not an array of strings" apart from
// a body that fails to decode at all.
type CreatePizzaRequest struct {
	CustomerName  string          `json:"customerName" example:"Alice"`
	SizeID        string          `json:"sizeId" example:"md"`
	IngredientIDs json.RawMessage `json:"ingredientIds" swaggertype:"array,string"`
}

// IngredientList decodes the raw ingredientIds field. ok is false when the
// field is absent, null, or anything other than a JSON array of strings.
func (r *CreatePizzaRequest) IngredientList() ([]string, bool) {
	if len(r.IngredientIDs) == 0 {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(r.IngredientIDs, &ids); err != nil {
		return nil, false
	}
	if ids == nil {
		return nil, false
	}
	return ids, true
}
