package repository

import (
	"context"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/jmoiron/sqlx"
)

// SQLRepository reads the catalog from a products table.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT id, title, category, price, rating, image, tag FROM products ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}
