package catalog

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

func TestCreateEmpty(t *testing.T) {
	c := CreateEmpty()

	if c.Meta.Brand != DefaultBrand {
		t.Errorf("Brand = %q, want %q", c.Meta.Brand, DefaultBrand)
	}
	if c.Meta.Version != domain.SchemaVersion {
		t.Errorf("Version = %q, want %q", c.Meta.Version, domain.SchemaVersion)
	}
	if c.Meta.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
	if c.Settings.Theme != ThemeLight {
		t.Errorf("Theme = %q, want %q", c.Settings.Theme, ThemeLight)
	}
	if c.Settings.AdminPinHash != "" {
		t.Error("new document must not have a PIN configured")
	}
	if len(c.Products) != 0 {
		t.Errorf("len(Products) = %d, want 0", len(c.Products))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple name",
			in:   "Mini Joy Bear",
			want: "mini-joy-bear",
		},
		{
			name: "whitespace runs collapse",
			in:   "Rainbow   Jelly\tPack",
			want: "rainbow-jelly-pack",
		},
		{
			name: "leading and trailing whitespace",
			in:   "  Wooden Elephant  ",
			want: "wooden-elephant",
		},
		{
			name: "already lowercase",
			in:   "jelly",
			want: "jelly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddProduct(t *testing.T) {
	c := CreateEmpty()
	draft := domain.ProductDraft{
		Name:        "Mini Joy Bear",
		Category:    "Toys",
		Price:       349,
		Description: "Handmade tiny bear.",
		StockCount:  12,
	}

	next, product, err := AddProduct(c, draft)
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}

	if len(next.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(next.Products))
	}
	if product.ID == "" {
		t.Error("product id not assigned")
	}
	if product.Slug != "mini-joy-bear" {
		t.Errorf("Slug = %q, want %q", product.Slug, "mini-joy-bear")
	}
	if product.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want default %q", product.Currency, DefaultCurrency)
	}
	if product.UnitsSold != 0 || product.TotalRevenue != 0 {
		t.Errorf("sales counters not zeroed: %+v", product)
	}
	if product.Rating.Count != 0 || len(product.Rating.Breakdown) != 5 {
		t.Errorf("rating not empty: %+v", product.Rating)
	}
	if product.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
	if len(c.Products) != 0 {
		t.Error("AddProduct() mutated the caller's document")
	}
}

func TestAddProduct_Validation(t *testing.T) {
	valid := domain.ProductDraft{
		Name:        "Mini Joy Bear",
		Category:    "Toys",
		Price:       349,
		Description: "Handmade tiny bear.",
		StockCount:  12,
	}

	tests := []struct {
		name   string
		mutate func(*domain.ProductDraft)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(d *domain.ProductDraft) { d.Name = "  " },
			field:  "name",
		},
		{
			name:   "missing category",
			mutate: func(d *domain.ProductDraft) { d.Category = "" },
			field:  "category",
		},
		{
			name:   "missing description",
			mutate: func(d *domain.ProductDraft) { d.Description = "" },
			field:  "description",
		},
		{
			name:   "negative price",
			mutate: func(d *domain.ProductDraft) { d.Price = -1 },
			field:  "price",
		},
		{
			name:   "negative stock",
			mutate: func(d *domain.ProductDraft) { d.StockCount = -1 },
			field:  "stock_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)

			_, _, err := AddProduct(CreateEmpty(), draft)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("AddProduct() error = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", validationErr.Field, tt.field)
			}
		})
	}
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	c := mergeFixture()

	next := DeleteProduct(c, "p1")
	if len(next.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(next.Products))
	}

	// Deleting again (or any unknown id) is a no-op, not an error
	again := DeleteProduct(next, "p1")
	if len(again.Products) != 1 {
		t.Errorf("second delete changed the document")
	}
	unknown := DeleteProduct(next, "no-such-id")
	if len(unknown.Products) != 1 {
		t.Errorf("deleting unknown id changed the document")
	}
}

func TestUpdateProduct(t *testing.T) {
	c := mergeFixture()

	edited := c.Products[0].Clone()
	edited.Price = 999

	next, err := UpdateProduct(c, edited)
	if err != nil {
		t.Fatalf("UpdateProduct() error = %v", err)
	}
	if next.Products[0].Price != 999 {
		t.Errorf("Price = %v, want 999", next.Products[0].Price)
	}

	missing := edited
	missing.ID = "no-such-id"
	if _, err := UpdateProduct(c, missing); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("UpdateProduct() error = %v, want ErrProductNotFound", err)
	}
}

func TestRecordProductSale_UnknownProduct(t *testing.T) {
	_, _, err := RecordProductSale(mergeFixture(), "no-such-id", 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("RecordProductSale() error = %v, want ErrProductNotFound", err)
	}
}

func TestMutationsStampGeneratedAt(t *testing.T) {
	c := mergeFixture()
	past := time.Now().UTC().Add(-time.Hour)
	c.Meta.GeneratedAt = past

	next, _, err := AddProduct(c, domain.ProductDraft{
		Name:        "Strawberry Delight Jelly",
		Category:    "Jellies",
		Price:       89,
		Description: "Premium strawberry jelly.",
	})
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if !next.Meta.GeneratedAt.After(past) {
		t.Error("AddProduct() did not refresh generated_at")
	}

	deleted := DeleteProduct(c, "p1")
	if !deleted.Meta.GeneratedAt.After(past) {
		t.Error("DeleteProduct() did not refresh generated_at")
	}
}

func TestSetTheme(t *testing.T) {
	c := CreateEmpty()

	next, err := SetTheme(c, ThemeDark)
	if err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if next.Settings.Theme != ThemeDark {
		t.Errorf("Theme = %q, want %q", next.Settings.Theme, ThemeDark)
	}

	if _, err := SetTheme(c, "sepia"); err == nil {
		t.Error("SetTheme() accepted an unknown theme")
	}
}

func TestToggleDemoMode(t *testing.T) {
	c := CreateEmpty()

	on := ToggleDemoMode(c)
	if !on.Settings.DemoMode {
		t.Error("demo mode not enabled")
	}
	if len(on.Products) == 0 {
		t.Error("demo products not seeded")
	}

	off := ToggleDemoMode(on)
	if off.Settings.DemoMode {
		t.Error("demo mode not disabled")
	}
	if len(off.Products) != 0 {
		t.Error("products not cleared when demo mode turned off")
	}
}

func TestSetAdminPin(t *testing.T) {
	hasher := NewPinHasher()
	c := CreateEmpty()

	next, err := SetAdminPin(c, "1234", hasher)
	if err != nil {
		t.Fatalf("SetAdminPin() error = %v", err)
	}
	if !hasher.Verify("1234", next.Settings.AdminPinHash) {
		t.Error("stored digest does not verify the pin")
	}

	if _, err := SetAdminPin(c, "123", hasher); err == nil {
		t.Error("SetAdminPin() accepted a pin shorter than 4 characters")
	}
}
