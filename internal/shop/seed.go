package shop

import "github.com/shopspring/decimal"

// SeedCatalog returns the demo catalog the storefront boots with.
func SeedCatalog() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Gold Rush High-Tops",
			Price:       decimal.RequireFromString("150.00"),
			Category:    CategorySneakers,
			Image:       "https://picsum.photos/id/103/500/500",
			Description: "Premium leather sneakers with gold accents. Perfect for making a statement.",
			Sizes:       []string{"US 7", "US 8", "US 9", "US 10", "US 11"},
			Reviews: []Review{
				{ID: "r1", User: "Kwame", Rating: 5, Comment: "Best shoes I own!"},
			},
		},
		{
			ID:          "2",
			Name:        "Midnight Denim Jacket",
			Price:       decimal.RequireFromString("120.00"),
			Category:    CategoryTops,
			Image:       "https://picsum.photos/id/1005/500/500",
			Description: "Dark wash denim jacket suitable for all seasons. Durable and stylish.",
			Sizes:       []string{"S", "M", "L", "XL"},
		},
		{
			ID:          "3",
			Name:        "Distressed Urban Jeans",
			Price:       decimal.RequireFromString("90.00"),
			Category:    CategoryJeans,
			Image:       "https://picsum.photos/id/342/500/500",
			Description: "Streetwear style distressed jeans with a comfortable fit.",
			Sizes:       []string{"30", "32", "34", "36"},
			Reviews: []Review{
				{ID: "r2", User: "Ama", Rating: 4, Comment: "Great fit, slightly long."},
			},
		},
		{
			ID:          "4",
			Name:        "Sika Classic Tee",
			Price:       decimal.RequireFromString("45.00"),
			Category:    CategoryTops,
			Image:       "https://picsum.photos/id/435/500/500",
			Description: "Essential cotton tee with the signature Sikawofie logo.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
		},
		{
			ID:          "5",
			Name:        "Velvet Run Sneakers",
			Price:       decimal.RequireFromString("135.00"),
			Category:    CategorySneakers,
			Image:       "https://picsum.photos/id/21/500/500",
			Description: "Soft texture running shoes that combine luxury with athletics.",
			Sizes:       []string{"US 8", "US 9", "US 10"},
		},
		{
			ID:          "6",
			Name:        "Slim Fit Chinos",
			Price:       decimal.RequireFromString("85.00"),
			Category:    CategoryJeans,
			Image:       "https://picsum.photos/id/177/500/500",
			Description: "Versatile pants that look like jeans but feel like heaven.",
			Sizes:       []string{"30", "32", "34"},
		},
	}
}
