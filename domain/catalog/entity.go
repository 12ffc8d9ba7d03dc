// Package catalog defines the persisted catalog document and its entities.
//
// The JSON tags match the on-disk .bb format (version "1.1"); readers
// must tolerate unknown fields and treat missing optional fields as
// unset.
package catalog

import "time"

// SchemaVersion is the forward-compatibility marker written to meta.version.
const SchemaVersion = "1.1"

// Catalog is the root document: metadata, settings and all products.
type Catalog struct {
	Meta     Meta      `json:"meta"`
	Settings Settings  `json:"settings"`
	Products []Product `json:"products"`
}

// Meta holds document-level metadata. GeneratedAt is refreshed on every
// committed mutation.
type Meta struct {
	Brand       string    `json:"brand"`
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
}

// Settings holds storefront settings. AdminPinHash is the hex digest of
// the admin PIN; empty string means no PIN has been configured yet.
type Settings struct {
	Theme        string `json:"theme"`
	AdminPinHash string `json:"admin_pin_hash"`
	DemoMode     bool   `json:"demo_mode"`
}

// Product is a catalog entry with its sales history and reviews.
type Product struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	Images       []string  `json:"images"`
	Description  string    `json:"description"`
	StockCount   int       `json:"stock_count"`
	UnitsSold    int       `json:"units_sold"`
	TotalRevenue float64   `json:"total_revenue"`
	CreatedAt    time.Time `json:"created_at"`
	Rating       Rating    `json:"rating"`
	Reviews      []Review  `json:"reviews"`
}

// Review is immutable once created; ordering is insertion order.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is derived entirely from a product's reviews and is never
// hand-edited. Breakdown keys are the integers 1..5 and sum to Count.
type Rating struct {
	Avg       float64     `json:"avg"`
	Count     int         `json:"count"`
	Breakdown map[int]int `json:"breakdown"`
}

// EmptyRating returns the zero-review rating with all breakdown buckets
// present.
func EmptyRating() Rating {
	return Rating{
		Avg:       0,
		Count:     0,
		Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}

// Clone returns a deep copy of the catalog. Core operations work on
// copies so callers never see shared mutable state.
func (c Catalog) Clone() Catalog {
	out := c
	out.Products = make([]Product, len(c.Products))
	for i, p := range c.Products {
		out.Products[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	out := p
	out.Images = cloneStrings(p.Images)
	out.Rating = p.Rating.Clone()
	out.Reviews = make([]Review, len(p.Reviews))
	for i, r := range p.Reviews {
		out.Reviews[i] = r.Clone()
	}
	return out
}

// Clone returns a deep copy of the review.
func (r Review) Clone() Review {
	out := r
	out.Images = cloneStrings(r.Images)
	return out
}

// Clone returns a deep copy of the rating.
func (r Rating) Clone() Rating {
	out := r
	out.Breakdown = make(map[int]int, len(r.Breakdown))
	for k, v := range r.Breakdown {
		out.Breakdown[k] = v
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
