package catalog

// LeaderboardEntry is a derived ranking row, never persisted. The public
// tier exposes identity plus a thumbnail; the admin tier exposes the
// full sales figures. Fields not used by a tier stay zero and are
// omitted from JSON.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug,omitempty"`
	Thumb        string  `json:"thumb,omitempty"`
	UnitsSold    int     `json:"units_sold,omitempty"`
	TotalRevenue float64 `json:"total_revenue,omitempty"`
}

// Leaderboard holds both privacy tiers of the same ranking.
type Leaderboard struct {
	Public []LeaderboardEntry `json:"public"`
	Admin  []LeaderboardEntry `json:"admin"`
}
