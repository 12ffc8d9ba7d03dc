// Package catalog implements the catalog document operations: every
// operation takes the current document (or product) by value and returns
// a new one, leaving the caller's copy untouched. The stateful Service
// in this package owns the single authoritative document.
package catalog

import (
	"strings"
	"time"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

const (
	// DefaultBrand is the storefront brand written to new documents.
	DefaultBrand = "Anand Greenwich"

	// DefaultCurrency is applied to product drafts that leave currency
	// empty.
	DefaultCurrency = "INR"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// CreateEmpty returns a fresh catalog document with no products, light
// theme and no admin PIN configured.
func CreateEmpty() domain.Catalog {
	return domain.Catalog{
		Meta: domain.Meta{
			Brand:       DefaultBrand,
			GeneratedAt: time.Now().UTC(),
			Version:     domain.SchemaVersion,
		},
		Settings: domain.Settings{
			Theme:        ThemeLight,
			AdminPinHash: "",
			DemoMode:     false,
		},
		Products: []domain.Product{},
	}
}

// Slugify lowercases the name and collapses runs of whitespace into a
// single hyphen. Slugs are a display convenience: collisions across
// products are permitted and uniqueness is deliberately not enforced.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// AddProduct validates the draft and appends a new product with a
// generated id, derived slug, zeroed sales counters and an empty rating.
func AddProduct(c domain.Catalog, draft domain.ProductDraft) (domain.Catalog, domain.Product, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return c, domain.Product{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(draft.Category) == "" {
		return c, domain.Product{}, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return c, domain.Product{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if draft.Price < 0 {
		return c, domain.Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if draft.StockCount < 0 {
		return c, domain.Product{}, &ValidationError{Field: "stock_count", Reason: "must not be negative"}
	}

	currency := draft.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	product := domain.Product{
		ID:          NewID(),
		Slug:        Slugify(draft.Name),
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Currency:    currency,
		Images:      append([]string(nil), draft.Images...),
		Description: draft.Description,
		StockCount:  draft.StockCount,
		CreatedAt:   time.Now().UTC(),
		Rating:      domain.EmptyRating(),
		Reviews:     []domain.Review{},
	}

	next := c.Clone()
	next.Products = append(next.Products, product)
	touch(&next)
	return next, product.Clone(), nil
}

// UpdateProduct replaces the stored product carrying the same id. This
// is the explicit-correction path: the caller-supplied value wins
// wholesale, counters included.
func UpdateProduct(c domain.Catalog, p domain.Product) (domain.Catalog, error) {
	next := c.Clone()
	for i := range next.Products {
		if next.Products[i].ID == p.ID {
			next.Products[i] = p.Clone()
			touch(&next)
			return next, nil
		}
	}
	return c, ErrProductNotFound
}

// DeleteProduct removes the product with the given id. Deleting an
// unknown id is a no-op returning the catalog unchanged; deletion is
// idempotent.
func DeleteProduct(c domain.Catalog, id string) domain.Catalog {
	next := c.Clone()
	for i := range next.Products {
		if next.Products[i].ID == id {
			next.Products = append(next.Products[:i], next.Products[i+1:]...)
			touch(&next)
			return next
		}
	}
	return next
}

// RecordProductSale applies a sale to the identified product and
// returns the updated catalog and product.
func RecordProductSale(c domain.Catalog, id string, quantity int) (domain.Catalog, domain.Product, error) {
	next := c.Clone()
	for i := range next.Products {
		if next.Products[i].ID != id {
			continue
		}
		updated, err := RecordSale(next.Products[i], quantity)
		if err != nil {
			return c, domain.Product{}, err
		}
		next.Products[i] = updated
		touch(&next)
		return next, updated.Clone(), nil
	}
	return c, domain.Product{}, ErrProductNotFound
}

// AddProductReview appends a review to the identified product and
// returns the updated catalog and product.
func AddProductReview(c domain.Catalog, id string, draft domain.ReviewDraft) (domain.Catalog, domain.Product, error) {
	next := c.Clone()
	for i := range next.Products {
		if next.Products[i].ID != id {
			continue
		}
		updated, err := AddReview(next.Products[i], draft)
		if err != nil {
			return c, domain.Product{}, err
		}
		next.Products[i] = updated
		touch(&next)
		return next, updated.Clone(), nil
	}
	return c, domain.Product{}, ErrProductNotFound
}

// ImportMerge merges an imported document into the catalog.
func ImportMerge(c, imported domain.Catalog) domain.Catalog {
	next := Merge(c, imported)
	touch(&next)
	return next
}

// SetTheme switches the storefront theme.
func SetTheme(c domain.Catalog, theme string) (domain.Catalog, error) {
	if theme != ThemeLight && theme != ThemeDark {
		return c, &ValidationError{Field: "theme", Reason: `must be "light" or "dark"`}
	}
	next := c.Clone()
	next.Settings.Theme = theme
	touch(&next)
	return next, nil
}

// ToggleDemoMode flips demo mode. Turning it on replaces the products
// with the demo set; turning it off clears them.
func ToggleDemoMode(c domain.Catalog) domain.Catalog {
	next := c.Clone()
	if next.Settings.DemoMode {
		next.Settings.DemoMode = false
		next.Products = []domain.Product{}
	} else {
		next.Settings.DemoMode = true
		next.Products = DemoProducts()
	}
	touch(&next)
	return next
}

// SetAdminPin hashes and stores the admin PIN.
func SetAdminPin(c domain.Catalog, pin string, hasher *PinHasher) (domain.Catalog, error) {
	if len(pin) < MinPinLength {
		return c, &ValidationError{Field: "pin", Reason: "must be at least 4 characters"}
	}
	next := c.Clone()
	next.Settings.AdminPinHash = hasher.Hash(pin)
	touch(&next)
	return next, nil
}

// touch stamps the committed-mutation timestamp.
func touch(c *domain.Catalog) {
	c.Meta.GeneratedAt = time.Now().UTC()
}
