package catalog

import (
	"reflect"
	"testing"

	domain "github.com/example/catalog-store-demo/domain/catalog"
)

func mergeFixture() domain.Catalog {
	c := CreateEmpty()
	c.Settings.AdminPinHash = "stored-digest"
	c.Products = []domain.Product{
		testProductWithID("p1", "Mini Joy Bear"),
		testProductWithID("p2", "Rainbow Jelly Pack"),
	}
	return c
}

func testProductWithID(id, name string) domain.Product {
	p := testProduct()
	p.ID = id
	p.Name = name
	p.Slug = Slugify(name)
	return p
}

func productIDs(c domain.Catalog) []string {
	ids := make([]string, len(c.Products))
	for i, p := range c.Products {
		ids[i] = p.ID
	}
	return ids
}

func TestMerge_Idempotent(t *testing.T) {
	existing := mergeFixture()

	merged := Merge(existing, existing)

	// generatedAt aside, merging a document into itself is a no-op
	merged.Meta.GeneratedAt = existing.Meta.GeneratedAt
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("Merge(c, c) != c\n got: %+v\nwant: %+v", merged, existing)
	}
}

func TestMerge_ImportedWinsOnConflict(t *testing.T) {
	existing := mergeFixture()

	imported := CreateEmpty()
	renamed := testProductWithID("p1", "Mini Joy Bear Deluxe")
	renamed.Price = 499
	imported.Products = []domain.Product{renamed}

	merged := Merge(existing, imported)

	if len(merged.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2", len(merged.Products))
	}
	if merged.Products[0].Name != "Mini Joy Bear Deluxe" {
		t.Errorf("Products[0].Name = %q, want imported name", merged.Products[0].Name)
	}
	if merged.Products[0].Price != 499 {
		t.Errorf("Products[0].Price = %v, want whole-product replacement", merged.Products[0].Price)
	}
}

func TestMerge_Ordering(t *testing.T) {
	existing := mergeFixture()

	imported := CreateEmpty()
	imported.Products = []domain.Product{
		testProductWithID("p9", "Newcomer Nine"),
		testProductWithID("p2", "Rainbow Jelly Pack v2"),
		testProductWithID("p8", "Newcomer Eight"),
	}

	merged := Merge(existing, imported)

	// Existing order first, imported-only products appended in imported
	// order
	want := []string{"p1", "p2", "p9", "p8"}
	if got := productIDs(merged); !reflect.DeepEqual(got, want) {
		t.Errorf("product order = %v, want %v", got, want)
	}
}

func TestMerge_Deterministic(t *testing.T) {
	existing := mergeFixture()
	imported := CreateEmpty()
	imported.Products = []domain.Product{
		testProductWithID("p9", "Newcomer Nine"),
		testProductWithID("p8", "Newcomer Eight"),
	}

	first := productIDs(Merge(existing, imported))
	second := productIDs(Merge(existing, imported))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Merge() ordering not deterministic: %v vs %v", first, second)
	}
}

func TestMerge_SettingsOverride(t *testing.T) {
	existing := mergeFixture()
	existing.Settings.Theme = ThemeLight

	imported := CreateEmpty()
	imported.Settings.Theme = ThemeDark
	imported.Settings.AdminPinHash = ""

	merged := Merge(existing, imported)

	if merged.Settings.Theme != ThemeDark {
		t.Errorf("Theme = %q, want imported theme", merged.Settings.Theme)
	}
	// An absent pin hash in the import must not wipe the stored one
	if merged.Settings.AdminPinHash != "stored-digest" {
		t.Errorf("AdminPinHash = %q, want existing digest kept", merged.Settings.AdminPinHash)
	}
}

func TestMerge_MetaOverride(t *testing.T) {
	existing := mergeFixture()

	imported := CreateEmpty()
	imported.Meta.Brand = "Imported Brand"
	imported.Meta.Version = ""

	merged := Merge(existing, imported)

	if merged.Meta.Brand != "Imported Brand" {
		t.Errorf("Brand = %q, want imported brand", merged.Meta.Brand)
	}
	if merged.Meta.Version != domain.SchemaVersion {
		t.Errorf("Version = %q, want existing version kept", merged.Meta.Version)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := mergeFixture()
	imported := CreateEmpty()
	imported.Products = []domain.Product{testProductWithID("p9", "Newcomer Nine")}

	Merge(existing, imported)

	if len(existing.Products) != 2 {
		t.Errorf("Merge() mutated existing document")
	}
	if len(imported.Products) != 1 {
		t.Errorf("Merge() mutated imported document")
	}
}
