// Package money renders amounts for display. It is never used in arithmetic.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders amount as whole US dollars with thousands grouping, e.g. "$1,234".
// Halves round away from zero.
func Format(amount decimal.Decimal) string {
	dollars := amount.Round(0).IntPart()
	sign := ""
	if dollars < 0 {
		sign = "-"
		dollars = -dollars
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprintf("%d", dollars)
}
