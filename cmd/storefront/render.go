package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/internal/money"
	"github.com/shopspring/decimal"
)

const (
	emptyStateText = "No products found for this search. Try another keyword."
	cardsPerRow    = 3
)

var (
	brandColor  = lipgloss.Color("#101F38")
	accentColor = lipgloss.Color("#8BC34A")
	mutedColor  = lipgloss.Color("#6b7280")

	brandStyle = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))

	pillStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	chipStyle       = lipgloss.NewStyle().Padding(0, 1)
	activeChipStyle = chipStyle.Bold(true).Foreground(accentColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			Width(30)

	installStyle = lipgloss.NewStyle().Foreground(accentColor).Underline(true)

	tagStyle   = lipgloss.NewStyle().Foreground(accentColor)
	titleStyle = lipgloss.NewStyle().Bold(true)
	priceStyle = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
)

// renderHeader draws the brand and the cart pill, plus the install hint while
// an install offer is pending.
func renderHeader(c *storefrontv1.Cart, installable bool) string {
	brand := brandStyle.Render("SW ShopWave") + " " + mutedStyle.Render("Everyday finds, elevated")
	parts := []string{brand, "  ", renderCartPill(c)}
	if installable {
		parts = append(parts, "  ", installStyle.Render("Install App: storefront install"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func renderCartPill(c *storefrontv1.Cart) string {
	var count int64
	subtotal := "$0"
	if c != nil {
		count = c.Count
		subtotal = c.FormattedSubtotal
	}
	return pillStyle.Render(fmt.Sprintf("%d items  %s", count, subtotal))
}

// renderCategories draws the category chips; the active one is bracketed.
func renderCategories(categories []string, active string) string {
	chips := make([]string, 0, len(categories))
	for _, c := range categories {
		if c == active {
			chips = append(chips, activeChipStyle.Render("["+c+"]"))
			continue
		}
		chips = append(chips, chipStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func renderProductCard(p *storefrontv1.Product) string {
	body := strings.Join([]string{
		tagStyle.Render(p.Tag),
		mutedStyle.Render(p.Category),
		titleStyle.Render(p.Title),
		priceStyle.Render(p.FormattedPrice) + "  " + mutedStyle.Render(fmt.Sprintf("%v rating", p.Rating)),
		mutedStyle.Render(fmt.Sprintf("add with: storefront add %d", p.Id)),
	}, "\n")
	return cardStyle.Render(body)
}

// renderProducts lays the cards out in rows, or prints the empty state.
func renderProducts(products []*storefrontv1.Product) string {
	if len(products) == 0 {
		return mutedStyle.Render(emptyStateText)
	}

	var rows []string
	for start := 0; start < len(products); start += cardsPerRow {
		end := min(start+cardsPerRow, len(products))
		cards := make([]string, 0, end-start)
		for _, p := range products[start:end] {
			cards = append(cards, renderProductCard(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderView(v *storefrontv1.View, installable bool) string {
	parts := []string{
		renderHeader(v.Cart, installable),
		renderCategories(v.Categories, v.ActiveCategory),
	}
	if v.SearchText != "" {
		parts = append(parts, mutedStyle.Render("Search: ")+v.SearchText)
	}
	parts = append(parts, renderProducts(v.Products))
	return strings.Join(parts, "\n\n")
}

// renderCart lists lines in the order they were first added, then the totals.
func renderCart(c *storefrontv1.Cart) string {
	if c == nil || len(c.Lines) == 0 {
		return mutedStyle.Render("Your cart is empty.")
	}

	lines := make([]string, 0, len(c.Lines)+2)
	for _, l := range c.Lines {
		lines = append(lines, fmt.Sprintf("%d x %s  %s", l.Qty, l.Product.Title, lineTotal(l)))
	}
	lines = append(lines, "", renderCartPill(c))
	return strings.Join(lines, "\n")
}

func lineTotal(l *storefrontv1.LineItem) string {
	price, err := decimal.NewFromString(l.Product.Price)
	if err != nil {
		return l.Product.FormattedPrice
	}
	return money.Format(price.Mul(decimal.NewFromInt(l.Qty)))
}
