package catalog

import (
	"time"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// DemoProducts returns the seed catalog used on first run and when demo
// mode is toggled on.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{
			ID:           "demo-1",
			Slug:         "mini-joy-bear",
			Name:         "Mini Joy Bear",
			Category:     "Toys",
			Price:        349.0,
			Currency:     "INR",
			Images:       []string{"https://images.pexels.com/photos/1375849/pexels-photo-1375849.jpeg?auto=compress&cs=tinysrgb&w=500"},
			Description:  "Handmade tiny bear with soft jelly stuffing. Perfect for cuddles and playtime.",
			StockCount:   12,
			UnitsSold:    24,
			TotalRevenue: 8376.0,
			CreatedAt:    date("2025-09-01T12:00:00Z"),
			Rating: domain.Rating{
				Avg:       4.6,
				Count:     10,
				Breakdown: map[int]int{1: 0, 2: 0, 3: 1, 4: 2, 5: 7},
			},
			Reviews: []domain.Review{
				{ID: "r1", Name: "Anita", Rating: 5, Text: "So cute!! My daughter loves it.", CreatedAt: date("2025-09-20T10:00:00Z")},
				{ID: "r2", Name: "Raj", Rating: 4, Text: "Great quality, very soft.", CreatedAt: date("2025-09-18T14:30:00Z")},
			},
		},
		{
			ID:           "demo-2",
			Slug:         "rainbow-jelly-pack",
			Name:         "Rainbow Jelly Pack",
			Category:     "Jellies",
			Price:        199.0,
			Currency:     "INR",
			Images:       []string{"https://images.pexels.com/photos/3788363/pexels-photo-3788363.jpeg?auto=compress&cs=tinysrgb&w=500"},
			Description:  "Colorful homemade jellies in 6 different flavors. Made with natural ingredients.",
			StockCount:   8,
			UnitsSold:    45,
			TotalRevenue: 8955.0,
			CreatedAt:    date("2025-08-15T09:00:00Z"),
			Rating: domain.Rating{
				Avg:       4.8,
				Count:     15,
				Breakdown: map[int]int{1: 0, 2: 0, 3: 1, 4: 2, 5: 12},
			},
			Reviews: []domain.Review{
				{ID: "r3", Name: "Priya", Rating: 5, Text: "Amazing flavors! Kids absolutely love them.", CreatedAt: date("2025-09-15T11:00:00Z")},
			},
		},
		{
			ID:           "demo-3",
			Slug:         "wooden-puzzle-elephant",
			Name:         "Wooden Puzzle Elephant",
			Category:     "Toys",
			Price:        599.0,
			Currency:     "INR",
			Images:       []string{"https://images.pexels.com/photos/298825/pexels-photo-298825.jpeg?auto=compress&cs=tinysrgb&w=500"},
			Description:  "Handcrafted wooden puzzle elephant. Educational and fun for all ages.",
			StockCount:   5,
			UnitsSold:    18,
			TotalRevenue: 10782.0,
			CreatedAt:    date("2025-07-20T15:30:00Z"),
			Rating: domain.Rating{
				Avg:       4.4,
				Count:     8,
				Breakdown: map[int]int{1: 0, 2: 0, 3: 1, 4: 3, 5: 4},
			},
			Reviews: []domain.Review{
				{ID: "r4", Name: "Amit", Rating: 5, Text: "Excellent craftsmanship, very detailed.", CreatedAt: date("2025-09-10T16:45:00Z")},
			},
		},
		{
			ID:           "demo-4",
			Slug:         "strawberry-delight-jelly",
			Name:         "Strawberry Delight Jelly",
			Category:     "Jellies",
			Price:        89.0,
			Currency:     "INR",
			Images:       []string{"https://images.pexels.com/photos/1756062/pexels-photo-1756062.jpeg?auto=compress&cs=tinysrgb&w=500"},
			Description:  "Premium strawberry jelly made with fresh strawberries. A sweet treat for everyone.",
			StockCount:   15,
			UnitsSold:    67,
			TotalRevenue: 5963.0,
			CreatedAt:    date("2025-06-10T08:15:00Z"),
			Rating: domain.Rating{
				Avg:       4.7,
				Count:     22,
				Breakdown: map[int]int{1: 0, 2: 0, 3: 2, 4: 4, 5: 16},
			},
			Reviews: []domain.Review{
				{ID: "r5", Name: "Sunita", Rating: 5, Text: "Fresh strawberry taste! Simply delicious.", CreatedAt: date("2025-09-05T13:20:00Z")},
			},
		},
	}
}

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
