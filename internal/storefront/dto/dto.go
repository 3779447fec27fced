package dto

import (
	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/shopspring/decimal"
)

// View is everything a presentation layer needs to draw one session.
type View struct {
	SessionID      string
	Version        int64 // session version the view was computed from
	Categories     []string
	ActiveCategory string
	SearchText     string
	Products       []model.Product
	Empty          bool // no product passed the filters
	Cart           CartView
}

type CartView struct {
	Lines             []model.LineItem
	Count             int
	Subtotal          decimal.Decimal
	FormattedSubtotal string
}
