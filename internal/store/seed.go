package store

import "sama-store/internal/domain"

// DefaultCategories is the fixed browsing taxonomy.
var DefaultCategories = []domain.Category{
	{ID: "1", Name: "Phones", Icon: "Smartphone"},
	{ID: "2", Name: "Electronics", Icon: "Laptop"},
	{ID: "3", Name: "Accessories", Icon: "Watch"},
	{ID: "4", Name: "Home Appliances", Icon: "Home"},
	{ID: "5", Name: "Natural Products", Icon: "Leaf"},
	{ID: "6", Name: "Digital Goods", Icon: "Cpu"},
}

// DefaultCatalog returns the catalog a fresh (or reset) store starts with.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:            "p1",
			Name:          "iPhone 15 Pro Max 256GB",
			Description:   "Apple's latest flagship with the A17 Pro chip and a pro-grade camera.",
			Price:         1650000,
			Category:      "Phones",
			Images:        []string{"https://picsum.photos/seed/iphone15/600/600"},
			Stock:         12,
			Rating:        4.8,
			Reviews:       125,
			IsOffer:       true,
			DiscountPrice: 1580000,
			IsNew:         true,
		},
		{
			ID:          "p2",
			Name:        "Natural Pumpkin Seed Extract",
			Description: "100% plant-derived extract rich in minerals, from our own farms.",
			Price:       35000,
			Category:    "Natural Products",
			Images:      []string{"https://picsum.photos/seed/veg-derivative/600/600"},
			Stock:       45,
			Rating:      4.9,
			Reviews:     64,
			IsNew:       true,
		},
		{
			ID:          "p3",
			Name:        "MacBook Air M3",
			Description: "The fastest performance in Iraq, ideal for designers and developers.",
			Price:       1850000,
			Category:    "Electronics",
			Images:      []string{"https://picsum.photos/seed/macm3/600/600"},
			Stock:       8,
			Rating:      5.0,
			Reviews:     42,
			IsNew:       true,
		},
	}
}
