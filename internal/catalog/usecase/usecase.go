package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/shopwave-storefront/internal/catalog"
	"github.com/fekuna/shopwave-storefront/internal/catalog/dto"
	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/fekuna/shopwave-storefront/internal/model"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	catalog *catalog.Catalog
	logger  logger.ZapLogger
}

func NewCatalogUseCase(cat *catalog.Catalog, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		catalog: cat,
		logger:  log,
	}
}

func (uc *catalogUseCase) ListCategories(ctx context.Context) []string {
	return uc.catalog.Categories()
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) []model.Product {
	products := uc.catalog.Visible(filters.Category, filters.SearchQuery)
	uc.logger.Debug("filtered catalog",
		zap.String("category", filters.Category),
		zap.String("search", filters.SearchQuery),
		zap.Int("visible", len(products)),
	)
	return products
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := uc.catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", catalog.ErrProductNotFound, id)
	}
	return &p, nil
}
