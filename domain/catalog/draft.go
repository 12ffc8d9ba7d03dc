package catalog

// ProductDraft is the caller-supplied input for a new product. The
// facade fills id, slug, timestamps and zeroed sales counters; a
// caller-supplied id or timestamp is never accepted.
type ProductDraft struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	StockCount  int      `json:"stock_count"`
}

// ReviewDraft is the caller-supplied input for a new review, lacking the
// store-assigned id and created_at.
type ReviewDraft struct {
	Name   string   `json:"name,omitempty"`
	Rating int      `json:"rating"`
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}
