package catalog

import (
	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/shopspring/decimal"
)

const imageParams = "?auto=format&fit=crop&w=900&q=80"

// Seed returns the compiled-in ShopWave catalog.
func Seed() []model.Product {
	return []model.Product{
		{
			ID:       1,
			Title:    "AeroFit Running Shoes",
			Category: "Fashion",
			Price:    decimal.NewFromInt(89),
			Rating:   4.8,
			Image:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff" + imageParams,
			Tag:      "Best Seller",
		},
		{
			ID:       2,
			Title:    "Nordic Ceramic Mug Set",
			Category: "Home",
			Price:    decimal.NewFromInt(42),
			Rating:   4.6,
			Image:    "https://images.unsplash.com/photo-1603199506016-b9a594b593c0" + imageParams,
			Tag:      "New Arrival",
		},
		{
			ID:       3,
			Title:    "Pulse Pro Smartwatch",
			Category: "Electronics",
			Price:    decimal.NewFromInt(219),
			Rating:   4.7,
			Image:    "https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1" + imageParams,
			Tag:      "Trending",
		},
		{
			ID:       4,
			Title:    "Bamboo Desk Organizer",
			Category: "Office",
			Price:    decimal.NewFromInt(31),
			Rating:   4.4,
			Image:    "https://images.unsplash.com/photo-1586953208448-b95a79798f07" + imageParams,
			Tag:      "Eco Pick",
		},
		{
			ID:       5,
			Title:    "Linen Lounge Chair",
			Category: "Home",
			Price:    decimal.NewFromInt(148),
			Rating:   4.5,
			Image:    "https://images.unsplash.com/photo-1592078615290-033ee584e267" + imageParams,
			Tag:      "Limited Stock",
		},
		{
			ID:       6,
			Title:    "Wireless Earbuds Max",
			Category: "Electronics",
			Price:    decimal.NewFromInt(129),
			Rating:   4.9,
			Image:    "https://images.unsplash.com/photo-1588423771073-b8903fbb85b5" + imageParams,
			Tag:      "Top Rated",
		},
		{
			ID:       7,
			Title:    "Everyday Tote Bag",
			Category: "Fashion",
			Price:    decimal.NewFromInt(55),
			Rating:   4.3,
			Image:    "https://images.unsplash.com/photo-1548036328-c9fa89d128fa" + imageParams,
			Tag:      "Editor Pick",
		},
		{
			ID:       8,
			Title:    "ErgoLift Laptop Stand",
			Category: "Office",
			Price:    decimal.NewFromInt(63),
			Rating:   4.6,
			Image:    "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9" + imageParams,
			Tag:      "Hot Deal",
		},
	}
}
