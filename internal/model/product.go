package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are never mutated once the catalog is loaded.
type Product struct {
	ID       int64           `db:"id" json:"id"`
	Title    string          `db:"title" json:"title"`
	Category string          `db:"category" json:"category"`
	Price    decimal.Decimal `db:"price" json:"price"`
	Rating   float64         `db:"rating" json:"rating"`
	Image    string          `db:"image" json:"image"`
	Tag      string          `db:"tag" json:"tag"`
}
