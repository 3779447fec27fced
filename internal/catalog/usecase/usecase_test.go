package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/shopwave-storefront/internal/catalog"
	"github.com/fekuna/shopwave-storefront/internal/catalog/dto"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) catalog.UseCase {
	t.Helper()
	cat, err := catalog.New(catalog.Seed())
	require.NoError(t, err)
	return NewCatalogUseCase(cat, logger.NewNop())
}

func TestListCategories(t *testing.T) {
	uc := newUseCase(t)

	assert.Equal(t,
		[]string{"All", "Fashion", "Home", "Electronics", "Office"},
		uc.ListCategories(context.Background()),
	)
}

func TestListProducts(t *testing.T) {
	uc := newUseCase(t)

	products := uc.ListProducts(context.Background(), &dto.ProductFilters{Category: "Home", SearchQuery: " MUG "})
	require.Len(t, products, 1)
	assert.Equal(t, int64(2), products[0].ID)

	none := uc.ListProducts(context.Background(), &dto.ProductFilters{Category: "Garden"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGetProduct(t *testing.T) {
	uc := newUseCase(t)

	p, err := uc.GetProduct(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Pulse Pro Smartwatch", p.Title)

	_, err = uc.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}
