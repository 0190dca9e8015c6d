package store

import (
	"sync"

	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
)

// MemoryRepository keeps orders in process memory; contents are lost on
// restart. Identifier assignment and append happen under one lock so ids stay
// unique and monotonic even with concurrent requests, and readers never see a
// partially stored order.
type MemoryRepository struct {
	mu     sync.RWMutex
	pizzas []models.Pizza
	lastID int
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create stores the pizza and assigns the next identifier
func (r *MemoryRepository) Create(pizza models.Pizza) (models.Pizza, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	pizza.ID = r.lastID
	pizza.IngredientIDs = append([]string(nil), pizza.IngredientIDs...)
	r.pizzas = append(r.pizzas, pizza)
	return pizza, nil
}

// List returns a copy of every stored pizza in insertion order
func (r *MemoryRepository) List() ([]models.Pizza, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Pizza, len(r.pizzas))
	copy(out, r.pizzas)
	return out, nil
}

// FindByID returns the pizza with the given identifier, if any
func (r *MemoryRepository) FindByID(id int) (models.Pizza, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pizzas {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Pizza{}, false, nil
}
