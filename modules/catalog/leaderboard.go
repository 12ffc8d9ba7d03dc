package catalog

import (
	"sort"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// LeaderboardSize is the maximum number of entries per tier.
const LeaderboardSize = 3

// Rank derives the best-seller leaderboard in both privacy tiers: at
// most LeaderboardSize entries sorted by units_sold descending, ties
// broken by original relative order. Products with zero sales are still
// eligible; an empty product list yields empty tiers.
func Rank(products []domain.Product) domain.Leaderboard {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UnitsSold > sorted[j].UnitsSold
	})

	n := len(sorted)
	if n > LeaderboardSize {
		n = LeaderboardSize
	}

	board := domain.Leaderboard{
		Public: make([]domain.LeaderboardEntry, 0, n),
		Admin:  make([]domain.LeaderboardEntry, 0, n),
	}
	for i := 0; i < n; i++ {
		p := sorted[i]

		thumb := ""
		if len(p.Images) > 0 {
			thumb = p.Images[0]
		}
		board.Public = append(board.Public, domain.LeaderboardEntry{
			Rank:  i + 1,
			ID:    p.ID,
			Name:  p.Name,
			Slug:  p.Slug,
			Thumb: thumb,
		})
		board.Admin = append(board.Admin, domain.LeaderboardEntry{
			Rank:         i + 1,
			ID:           p.ID,
			Name:         p.Name,
			UnitsSold:    p.UnitsSold,
			TotalRevenue: p.TotalRevenue,
		})
	}
	return board
}
