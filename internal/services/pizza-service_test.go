package services

import (
	"errors"
	"testing"

	"github.com/franciscosanchezn/pizza-builder-api/internal/catalog"
	"github.com/franciscosanchezn/pizza-builder-api/internal/models"
	"github.com/franciscosanchezn/pizza-builder-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() PizzaService {
	return NewPizzaService(catalog.New(), store.NewMemoryRepository())
}

func TestCreatePizza(t *testing.T) {
	svc := newTestService()

	view, err := svc.CreatePizza("  Alice  ", "md", []string{"cheese", "pepperoni", "olive"})
	require.NoError(t, err)

	assert.Equal(t, 1, view.ID)
	assert.Equal(t, "Alice", view.CustomerName, "customer name should be trimmed")
	assert.Equal(t, "md", view.Size.ID)
	assert.Equal(t, "Medium", view.Size.Name)
	require.Len(t, view.Ingredients, 3)
	assert.Equal(t, "cheese", view.Ingredients[0].ID)
	assert.InDelta(t, 12.70, view.FinalPrice, 1e-9) // 8.75 + 1.25 + 1.80 + 0.90
	assert.False(t, view.CreatedAt.IsZero())
}

func TestCreatePizzaDuplicateIngredientsChargedOnce(t *testing.T) {
	svc := newTestService()

	deduped, err := svc.CreatePizza("Alice", "md", []string{"cheese", "cheese"})
	require.NoError(t, err)
	single, err := svc.CreatePizza("Alice", "md", []string{"cheese"})
	require.NoError(t, err)

	assert.Equal(t, single.FinalPrice, deduped.FinalPrice)
	require.Len(t, deduped.Ingredients, 1)
}

func TestCreatePizzaInvalidSize(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreatePizza("Bob", "xx", []string{"cheese"})
	require.Error(t, err)

	var invalidSize *models.InvalidSizeError
	require.True(t, errors.As(err, &invalidSize))
	assert.Equal(t, "Invalid sizeId: xx", err.Error())
}

func TestCreatePizzaInvalidIngredient(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreatePizza("Bob", "md", []string{"cheese", "glitter"})
	require.Error(t, err)

	var invalidIngredient *models.InvalidIngredientError
	require.True(t, errors.As(err, &invalidIngredient))
	assert.Equal(t, "Invalid ingredientId: glitter", err.Error())
}

func TestCreatePizzaEmptyIngredients(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreatePizza("Bob", "md", nil)
	require.Error(t, err)

	var validation *models.ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestCreatePizzaRejectsBeforePersisting(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreatePizza("Bob", "xx", []string{"cheese"})
	require.Error(t, err)

	views, err := svc.ListPizzas(ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, views, "a rejected order must not be stored")
}

func TestListPizzasInsertionOrder(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := svc.CreatePizza(name, "sm", []string{"cheese"})
		require.NoError(t, err)
	}

	views, err := svc.ListPizzas(ListOptions{})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Alice", views[0].CustomerName)
	assert.Equal(t, "Bob", views[1].CustomerName)
	assert.Equal(t, "Carol", views[2].CustomerName)
}

func TestListPizzasFilterByCustomerName(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreatePizza("Carol", "sm", []string{"cheese"})
	require.NoError(t, err)
	_, err = svc.CreatePizza("Dave", "lg", []string{"pepperoni"})
	require.NoError(t, err)

	views, err := svc.ListPizzas(ListOptions{CustomerName: "car"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Carol", views[0].CustomerName)

	// The filter term is trimmed and matched case-insensitively
	views, err = svc.ListPizzas(ListOptions{CustomerName: "  CAR  "})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Carol", views[0].CustomerName)
}

func TestListPizzasSortByFinalPrice(t *testing.T) {
	svc := newTestService()
	// Two equally priced orders around a cheaper one to exercise tie-breaking
	_, err := svc.CreatePizza("Alice", "lg", []string{"bacon"})
	require.NoError(t, err)
	_, err = svc.CreatePizza("Bob", "sm", []string{"onion"})
	require.NoError(t, err)
	_, err = svc.CreatePizza("Carol", "lg", []string{"bacon"})
	require.NoError(t, err)

	views, err := svc.ListPizzas(ListOptions{SortBy: SortByFinalPrice, Order: "desc"})
	require.NoError(t, err)
	require.Len(t, views, 3)
	for i := 0; i < len(views)-1; i++ {
		assert.GreaterOrEqual(t, views[i].FinalPrice, views[i+1].FinalPrice)
	}
	// Equal prices keep their insertion order
	assert.Equal(t, "Alice", views[0].CustomerName)
	assert.Equal(t, "Carol", views[1].CustomerName)
	assert.Equal(t, "Bob", views[2].CustomerName)

	views, err = svc.ListPizzas(ListOptions{SortBy: SortByFinalPrice})
	require.NoError(t, err)
	assert.Equal(t, "Bob", views[0].CustomerName, "ascending is the default order")
}

func TestListPizzasSortByCreatedAt(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := svc.CreatePizza(name, "sm", []string{"cheese"})
		require.NoError(t, err)
	}

	views, err := svc.ListPizzas(ListOptions{SortBy: SortByCreatedAt})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Alice", views[0].CustomerName)

	views, err = svc.ListPizzas(ListOptions{SortBy: SortByCreatedAt, Order: "desc"})
	require.NoError(t, err)
	for i := 0; i < len(views)-1; i++ {
		assert.False(t, views[i].CreatedAt.Before(views[i+1].CreatedAt))
	}
}

func TestListPizzasUnknownSortFieldKeepsInsertionOrder(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreatePizza("Alice", "lg", []string{"bacon"})
	require.NoError(t, err)
	_, err = svc.CreatePizza("Bob", "sm", []string{"onion"})
	require.NoError(t, err)

	views, err := svc.ListPizzas(ListOptions{SortBy: "toppingCount"})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].CustomerName)
	assert.Equal(t, "Bob", views[1].CustomerName)
}

func TestListPizzasDoesNotReorderTheStore(t *testing.T) {
	svc := newTestService()
	_, err := svc.CreatePizza("Alice", "lg", []string{"bacon"})
	require.NoError(t, err)
	_, err = svc.CreatePizza("Bob", "sm", []string{"onion"})
	require.NoError(t, err)

	_, err = svc.ListPizzas(ListOptions{SortBy: SortByFinalPrice, Order: "desc"})
	require.NoError(t, err)

	views, err := svc.ListPizzas(ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Alice", views[0].CustomerName, "sorting must apply to a copy")
}

func TestGetPizzaByID(t *testing.T) {
	svc := newTestService()
	created, err := svc.CreatePizza("Alice", "md", []string{"cheese"})
	require.NoError(t, err)

	view, found, err := svc.GetPizzaByID(created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Alice", view.CustomerName)
	assert.Equal(t, "Medium", view.Size.Name)

	_, found, err = svc.GetPizzaByID(99999)
	require.NoError(t, err, "absence is not an error")
	assert.False(t, found)
}
