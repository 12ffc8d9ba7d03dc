package catalog

import (
	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// Merge reconciles an imported document into the existing one: a full
// outer join on product id where the imported product wins wholesale on
// conflict (no field-level merge). Products only in existing are kept;
// products only in imported are appended in imported order, so the
// result ordering is deterministic for the same two inputs. Meta and
// settings fields present in imported override existing ones.
func Merge(existing, imported domain.Catalog) domain.Catalog {
	merged := existing.Clone()
	merged.Meta = mergeMeta(merged.Meta, imported.Meta)
	merged.Settings = mergeSettings(merged.Settings, imported.Settings)

	index := make(map[string]int, len(merged.Products))
	for i, p := range merged.Products {
		index[p.ID] = i
	}
	for _, p := range imported.Products {
		if i, ok := index[p.ID]; ok {
			merged.Products[i] = p.Clone()
			continue
		}
		index[p.ID] = len(merged.Products)
		merged.Products = append(merged.Products, p.Clone())
	}
	return merged
}

// mergeMeta overrides existing fields with imported values where the
// imported field is set. An absent field decodes to its zero value and
// leaves the existing value in place.
func mergeMeta(existing, imported domain.Meta) domain.Meta {
	out := existing
	if imported.Brand != "" {
		out.Brand = imported.Brand
	}
	if imported.Version != "" {
		out.Version = imported.Version
	}
	if !imported.GeneratedAt.IsZero() {
		out.GeneratedAt = imported.GeneratedAt
	}
	return out
}

// mergeSettings mirrors mergeMeta for settings. DemoMode always adopts
// the imported value: the flag is written on every export, so imported
// wins outright.
func mergeSettings(existing, imported domain.Settings) domain.Settings {
	out := existing
	if imported.Theme != "" {
		out.Theme = imported.Theme
	}
	if imported.AdminPinHash != "" {
		out.AdminPinHash = imported.AdminPinHash
	}
	out.DemoMode = imported.DemoMode
	return out
}
