package catalog

import (
	"context"

	"github.com/fekuna/shopwave-storefront/internal/model"
)

// Repository is a read-only product source. It is consulted once, at startup.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
}
