package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormRepository(t *testing.T) *GormRepository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo, err := NewGormRepository(db)
	require.NoError(t, err)
	return repo
}

func TestGormRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := setupGormRepository(t)

	for i := 1; i <= 3; i++ {
		created, err := repo.Create(testPizza("Alice"))
		require.NoError(t, err)
		assert.Equal(t, i, created.ID)
	}
}

func TestGormRepositoryRoundTrip(t *testing.T) {
	repo := setupGormRepository(t)

	pizza := testPizza("Bob")
	pizza.IngredientIDs = []string{"cheese", "pepperoni"}
	created, err := repo.Create(pizza)
	require.NoError(t, err)

	got, found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Bob", got.CustomerName)
	assert.Equal(t, []string{"cheese", "pepperoni"}, got.IngredientIDs)
	assert.InDelta(t, pizza.FinalPrice, got.FinalPrice, 1e-9)
}

func TestGormRepositoryListsInInsertionOrder(t *testing.T) {
	repo := setupGormRepository(t)
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := repo.Create(testPizza(name))
		require.NoError(t, err)
	}

	pizzas, err := repo.List()
	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Alice", pizzas[0].CustomerName)
	assert.Equal(t, "Carol", pizzas[2].CustomerName)
}

func TestGormRepositoryFindByIDAbsent(t *testing.T) {
	repo := setupGormRepository(t)

	_, found, err := repo.FindByID(99999)
	require.NoError(t, err)
	assert.False(t, found)
}
