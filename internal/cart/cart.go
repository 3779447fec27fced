// Package cart implements the cart aggregator: adding products to an immutable
// cart value and reducing a cart to its item count and subtotal.
package cart

import (
	"errors"
	"fmt"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/shopspring/decimal"
)

var ErrInvalidProduct = errors.New("invalid product")

type Totals struct {
	Count    int
	Subtotal decimal.Decimal
}

// Add returns a cart with one more unit of p. The input cart is left as it was.
func Add(c model.Cart, p *model.Product) (model.Cart, error) {
	if p == nil {
		return c, fmt.Errorf("%w: missing product", ErrInvalidProduct)
	}
	if p.ID <= 0 {
		return c, fmt.Errorf("%w: id %d", ErrInvalidProduct, p.ID)
	}

	qty := 1
	if line, ok := c.Line(p.ID); ok {
		qty = line.Qty + 1
	}
	return c.Put(model.LineItem{Product: *p, Qty: qty}), nil
}

// Aggregate sums quantities and qty*price over every line.
func Aggregate(c model.Cart) Totals {
	totals := Totals{Subtotal: decimal.Zero}
	for _, line := range c.Lines() {
		totals.Count += line.Qty
		totals.Subtotal = totals.Subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return totals
}
