// Package pricing implements the pizza pricing rules: resolving the chosen
// size and ingredients against catalog data and computing the final price.
// Everything here is pure; validation failures come back as the typed errors
// from the models package so handlers can build exact messages.
package pricing

import (
	"math"

	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
)

// Round2 rounds to 2 decimal places, halves away from zero. Applied once to
// the final sum, never per term.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateSize resolves sizeID against the given sizes. Returns an
// InvalidSizeError carrying the identifier when nothing matches.
func ValidateSize(sizeID string, sizes []models.Size) (models.Size, error) {
	for _, s := range sizes {
		if s.ID == sizeID {
			return s, nil
		}
	}
	return models.Size{}, &models.InvalidSizeError{SizeID: sizeID}
}

// ValidateIngredients resolves ingredientIDs against the given ingredients.
// Duplicates are dropped, keeping the order of first occurrence. Returns an
// InvalidIngredientError for the first identifier with no match. An empty
// input yields an empty result; rejecting that is the caller's job.
func ValidateIngredients(ingredientIDs []string, ingredients []models.Ingredient) ([]models.Ingredient, error) {
	seen := make(map[string]struct{}, len(ingredientIDs))
	resolved := make([]models.Ingredient, 0, len(ingredientIDs))

	for _, id := range ingredientIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		found := false
		for _, ingredient := range ingredients {
			if ingredient.ID == id {
				resolved = append(resolved, ingredient)
				found = true
				break
			}
		}
		if !found {
			return nil, &models.InvalidIngredientError{IngredientID: id}
		}
	}
	return resolved, nil
}

// CalculatePrice computes the final price: the size's base price plus the
// extra price of every ingredient, rounded once to 2 decimals.
func CalculatePrice(size models.Size, ingredients []models.Ingredient) float64 {
	total := size.BasePrice
	for _, ingredient := range ingredients {
		total += ingredient.ExtraPrice
	}
	return Round2(total)
}
