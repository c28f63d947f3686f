package repository

import (
	"context"
	"testing"

	"github.com/jayramanidev/portfolio/internal/catalog"
	"github.com/jayramanidev/portfolio/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepository(t *testing.T) ProductRepository {
	t.Helper()
	cat, err := catalog.New([]model.Product{
		{ID: 1, Name: "Quantum Drive", Price: 299.99, Category: "PROPULSION"},
		{ID: 2, Name: "Nebula Visor", Price: 89.50, Category: "OPTICS"},
		{ID: 3, Name: "Grav Boots", Price: 149.00, Category: "APPAREL"},
		{ID: 4, Name: "Orbit Cap", Price: 24.50, Category: "APPAREL"},
	})
	require.NoError(t, err)
	return NewProductRepository(cat, zerolog.Nop())
}

func TestProductRepository_GetAll(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	t.Run("catalogue order", func(t *testing.T) {
		products, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, products, 4)
		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, 4, products[3].ID)
	})

	t.Run("pagination window", func(t *testing.T) {
		products, err := repo.GetAll(ctx, 2, 1)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 2, products[0].ID)
		assert.Equal(t, 3, products[1].ID)
	})

	t.Run("offset past the end", func(t *testing.T) {
		products, err := repo.GetAll(ctx, 10, 100)
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductRepository_GetByID(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	product, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Nebula Visor", product.Name)

	product, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, product, "unknown IDs resolve to nil, not an error")
}

func TestProductRepository_GetByIDs(t *testing.T) {
	repo := testRepository(t)

	products, err := repo.GetByIDs(context.Background(), []int{3, 99, 1})
	require.NoError(t, err)
	require.Len(t, products, 2, "unknown IDs are omitted")
	assert.Equal(t, 3, products[0].ID)
	assert.Equal(t, 1, products[1].ID)
}

func TestProductRepository_GetByCategory(t *testing.T) {
	repo := testRepository(t)

	products, err := repo.GetByCategory(context.Background(), "APPAREL")
	require.NoError(t, err)
	require.Len(t, products, 2)

	products, err = repo.GetByCategory(context.Background(), "NO_SUCH")
	require.NoError(t, err)
	assert.Empty(t, products)
}
