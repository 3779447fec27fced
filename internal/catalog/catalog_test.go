package catalog

import (
	"testing"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []model.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		want     []string
	}{
		{
			name:     "empty catalog",
			products: nil,
			want:     []string{"All"},
		},
		{
			name:     "seed keeps first appearance order",
			products: Seed(),
			want:     []string{"All", "Fashion", "Home", "Electronics", "Office"},
		},
		{
			name: "case differences are distinct categories",
			products: []model.Product{
				{ID: 1, Title: "a", Category: "home"},
				{ID: 2, Title: "b", Category: "Home"},
				{ID: 3, Title: "c", Category: "home"},
			},
			want: []string{"All", "home", "Home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categories(tt.products))
		})
	}
}

func TestVisibleProducts(t *testing.T) {
	seed := Seed()

	tests := []struct {
		name     string
		category string
		search   string
		want     []int64
	}{
		{name: "all and empty search is the whole catalog", category: "All", search: "", want: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "blank search matches everything", category: "All", search: "   ", want: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "category only", category: "Home", search: "", want: []int64{2, 5}},
		{name: "search is case-insensitive", category: "All", search: "AERO", want: []int64{1}},
		{name: "search is trimmed", category: "All", search: "  shoes  ", want: []int64{1}},
		{name: "search is a substring match", category: "All", search: "er", want: []int64{1, 2, 4, 7, 8}},
		{name: "category and search are combined with and", category: "Office", search: "er", want: []int64{4, 8}},
		{name: "no match", category: "All", search: "zzz", want: []int64{}},
		{name: "unknown category matches nothing", category: "Garden", search: "", want: []int64{}},
		{name: "category is case-sensitive", category: "home", search: "", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleProducts(seed, tt.category, tt.search)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestVisibleProductsSatisfyBothPredicates(t *testing.T) {
	seed := Seed()
	queries := []string{"", "a", "PRO", " set", "bag ", "x"}

	for _, category := range Categories(seed) {
		for _, q := range queries {
			visible := VisibleProducts(seed, category, q)
			shown := make(map[int64]bool, len(visible))
			for _, p := range visible {
				shown[p.ID] = true
				assert.True(t, MatchesCategory(p, category))
				assert.True(t, MatchesSearch(p, q))
			}
			for _, p := range seed {
				if !shown[p.ID] {
					assert.False(t, MatchesCategory(p, category) && MatchesSearch(p, q),
						"product %d hidden for %q/%q", p.ID, category, q)
				}
			}
		}
	}
}

func TestNewRejectsMalformedCatalog(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
	}{
		{name: "zero id", products: []model.Product{{ID: 0, Title: "a", Category: "c"}}},
		{name: "duplicate id", products: []model.Product{{ID: 1, Title: "a", Category: "c"}, {ID: 1, Title: "b", Category: "c"}}},
		{name: "empty title", products: []model.Product{{ID: 1, Category: "c"}}},
		{name: "empty category", products: []model.Product{{ID: 1, Title: "a"}}},
		{name: "negative price", products: []model.Product{{ID: 1, Title: "a", Category: "c", Price: decimal.NewFromInt(-1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalogIsFrozen(t *testing.T) {
	products := Seed()
	cat, err := New(products)
	require.NoError(t, err)

	products[0].Title = "mutated"
	got := cat.Products()
	got[1].Title = "mutated too"
	cats := cat.Categories()
	cats[0] = "Everything"

	p, ok := cat.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "AeroFit Running Shoes", p.Title)
	p, _ = cat.Lookup(2)
	assert.Equal(t, "Nordic Ceramic Mug Set", p.Title)
	assert.Equal(t, "All", cat.Categories()[0])
	assert.Equal(t, 8, cat.Len())
}

func TestLookupMissing(t *testing.T) {
	cat, err := New(Seed())
	require.NoError(t, err)

	_, ok := cat.Lookup(42)
	assert.False(t, ok)
}
