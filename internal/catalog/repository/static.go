package repository

import (
	"context"

	"github.com/fekuna/shopwave-storefront/internal/model"
)

// StaticRepository serves a compiled-in product list.
type StaticRepository struct {
	products []model.Product
}

func NewStaticRepository(products []model.Product) *StaticRepository {
	return &StaticRepository{products: products}
}

func (r *StaticRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
