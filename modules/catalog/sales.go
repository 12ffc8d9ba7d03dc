package catalog

import (
	domain "github.com/example/catalog-store-demo/domain/catalog"
)

// RecordSale applies a sale of quantity units to the product:
// stock_count decreases, units_sold and total_revenue accumulate.
// Revenue is folded in at the product's current price, so a later price
// edit does not retroactively change past revenue. On failure the input
// product is returned unmodified; no partial sale is ever applied.
func RecordSale(p domain.Product, quantity int) (domain.Product, error) {
	if quantity < 1 {
		return p, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if p.StockCount < quantity {
		return p, &InsufficientStockError{
			ProductID: p.ID,
			Requested: quantity,
			Available: p.StockCount,
		}
	}

	next := p.Clone()
	next.StockCount -= quantity
	next.UnitsSold += quantity
	next.TotalRevenue += float64(quantity) * p.Price
	return next, nil
}
