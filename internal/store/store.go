// Package store persists pizza orders. The repository owns the order
// collection and identifier assignment; identifiers start at 1 and grow
// monotonically for the lifetime of the backing store. Orders are never
// updated or deleted once created.
package store

import "github.com/franciscosanchezn/pizza-builder-api/internal/models"

// Repository defines behavior for persisting pizza orders
type Repository interface {
	// Create stores the pizza, assigning the next identifier, and returns
	// the stored record.
	Create(pizza models.Pizza) (models.Pizza, error)
	// List returns every stored pizza in insertion order.
	List() ([]models.Pizza, error)
	// FindByID returns the pizza with the given identifier. Absence is a
	// normal outcome reported through the bool, not an error.
	FindByID(id int) (models.Pizza, bool, error)
}
