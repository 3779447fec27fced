// Package catalog holds the immutable product catalog together with the
// category index and the filter engine that run over it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/shopwave-storefront/internal/model"
)

// AllCategories is the selector that disables category filtering.
const AllCategories = "All"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// Catalog is an ordered, read-only set of products. It is safe for concurrent use.
type Catalog struct {
	products   []model.Product
	byID       map[int64]int
	categories []string
}

// New validates products and freezes them into a Catalog. The slice is copied.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: product at position %d has non-positive id %d", ErrInvalidCatalog, i, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("%w: product %d has an empty title", ErrInvalidCatalog, p.ID)
		}
		if p.Category == "" {
			return nil, fmt.Errorf("%w: product %d has an empty category", ErrInvalidCatalog, p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d has a negative price", ErrInvalidCatalog, p.ID)
		}
		c.byID[p.ID] = i
	}

	c.categories = Categories(c.products)
	return c, nil
}

// Load reads every product from repo and builds a Catalog from them.
func Load(ctx context.Context, repo Repository) (*Catalog, error) {
	products, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(products)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns a copy of the catalog in its original order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns a copy of the memoized category index.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Lookup(id int64) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Visible(activeCategory, searchText string) []model.Product {
	return VisibleProducts(c.products, activeCategory, searchText)
}

// Categories returns "All" followed by each distinct category in order of first appearance.
func Categories(products []model.Product) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// VisibleProducts keeps the products that pass both the category and the search
// filter, in their original order. The result is never nil.
func VisibleProducts(products []model.Product, activeCategory, searchText string) []model.Product {
	query := normalizeQuery(searchText)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, activeCategory) && matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// MatchesCategory is an exact, case-sensitive comparison unless activeCategory is "All".
func MatchesCategory(p model.Product, activeCategory string) bool {
	return activeCategory == AllCategories || p.Category == activeCategory
}

// MatchesSearch reports whether the trimmed search text occurs in the title, ignoring case.
func MatchesSearch(p model.Product, searchText string) bool {
	return matchesQuery(p, normalizeQuery(searchText))
}

func normalizeQuery(searchText string) string {
	return strings.ToLower(strings.TrimSpace(searchText))
}

func matchesQuery(p model.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query)
}
