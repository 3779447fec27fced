package catalog

import (
	"context"

	"github.com/fekuna/shopwave-storefront/internal/catalog/dto"
	"github.com/fekuna/shopwave-storefront/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) []string
	ListProducts(ctx context.Context, filters *dto.ProductFilters) []model.Product
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}
