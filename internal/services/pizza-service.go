package services

import (
	"sort"
	"strings"
	"time"

	"github.com/franciscosanchezn/pizza-builder-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
	"github.com/franciscosanchezn/pizza-builder-api/internal/pricing"
	"github.com/franciscosanchezn/pizza-builder-api/internal/store"
)

// Sort fields accepted by ListPizzas; anything else keeps insertion order.
const (
	SortByFinalPrice = "finalPrice"
	SortByCreatedAt  = "createdAt"
)

// ListOptions narrows and orders the result of ListPizzas
type ListOptions struct {
	// CustomerName filters by case-insensitive substring match when non-blank.
	CustomerName string
	// SortBy is finalPrice or createdAt; any other value keeps insertion order.
	SortBy string
	// Order is "desc" for descending; anything else sorts ascending.
	Order string
}

// PizzaService provides methods to create and query pizza orders
type PizzaService interface {
	// CreatePizza validates the selection against the catalog, computes the
	// final price, persists the order and returns its view.
	CreatePizza(customerName, sizeID string, ingredientIDs []string) (models.PizzaView, error)
	// ListPizzas returns order views filtered and sorted per opts.
	ListPizzas(opts ListOptions) ([]models.PizzaView, error)
	// GetPizzaByID returns the view for one order; absence is reported
	// through the bool, not as an error.
	GetPizzaByID(id int) (models.PizzaView, bool, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	catalog *catalog.Catalog
	repo    store.Repository
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(cat *catalog.Catalog, repo store.Repository) PizzaService {
	return &pizzaService{catalog: cat, repo: repo}
}

func (s *pizzaService) CreatePizza(customerName, sizeID string, ingredientIDs []string) (models.PizzaView, error) {
	size, err := pricing.ValidateSize(sizeID, s.catalog.Sizes())
	if err != nil {
		return models.PizzaView{}, err
	}

	ingredients, err := pricing.ValidateIngredients(ingredientIDs, s.catalog.Ingredients())
	if err != nil {
		return models.PizzaView{}, err
	}
	if len(ingredients) == 0 {
		return models.PizzaView{}, models.ErrEmptyIngredients
	}

	// Store the deduplicated identifiers so the view lists each ingredient once
	ids := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		ids[i] = ingredient.ID
	}

	pizza := models.Pizza{
		CustomerName:  strings.TrimSpace(customerName),
		SizeID:        size.ID,
		IngredientIDs: ids,
		FinalPrice:    pricing.CalculatePrice(size, ingredients),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(pizza)
	if err != nil {
		return models.PizzaView{}, err
	}
	return s.buildView(created), nil
}

func (s *pizzaService) ListPizzas(opts ListOptions) ([]models.PizzaView, error) {
	pizzas, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	views := make([]models.PizzaView, 0, len(pizzas))
	term := strings.ToLower(strings.TrimSpace(opts.CustomerName))
	for _, pizza := range pizzas {
		if term != "" && !strings.Contains(strings.ToLower(pizza.CustomerName), term) {
			continue
		}
		views = append(views, s.buildView(pizza))
	}

	sortViews(views, opts)
	return views, nil
}

func (s *pizzaService) GetPizzaByID(id int) (models.PizzaView, bool, error) {
	pizza, found, err := s.repo.FindByID(id)
	if err != nil || !found {
		return models.PizzaView{}, false, err
	}
	return s.buildView(pizza), true, nil
}

// sortViews orders views in place. The sort is stable so equal keys keep
// their relative insertion order; views is already a copy, the underlying
// store is never reordered.
func sortViews(views []models.PizzaView, opts ListOptions) {
	desc := opts.Order == "desc"

	switch opts.SortBy {
	case SortByFinalPrice:
		sort.SliceStable(views, func(i, j int) bool {
			if desc {
				return views[i].FinalPrice > views[j].FinalPrice
			}
			return views[i].FinalPrice < views[j].FinalPrice
		})
	case SortByCreatedAt:
		sort.SliceStable(views, func(i, j int) bool {
			if desc {
				return views[j].CreatedAt.Before(views[i].CreatedAt)
			}
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		})
	}
}

// buildView joins a stored order with live catalog data. Resolution happens
// at read time; with the catalog immutable after start every stored
// identifier still resolves.
func (s *pizzaService) buildView(pizza models.Pizza) models.PizzaView {
	size, _ := s.catalog.FindSize(pizza.SizeID)

	ingredients := make([]models.Ingredient, 0, len(pizza.IngredientIDs))
	for _, id := range pizza.IngredientIDs {
		if ingredient, ok := s.catalog.FindIngredient(id); ok {
			ingredients = append(ingredients, ingredient)
		}
	}

	return models.PizzaView{
		ID:           pizza.ID,
		CustomerName: pizza.CustomerName,
		Size:         size,
		Ingredients:  ingredients,
		FinalPrice:   pizza.FinalPrice,
		CreatedAt:    pizza.CreatedAt,
	}
}
