package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrProductNotFound is returned when the targeted product id does
	// not exist in the document.
	ErrProductNotFound = errors.New("product not found")

	// ErrPinNotSet is returned by login when no admin PIN has been
	// configured yet. An empty stored digest never matches any PIN.
	ErrPinNotSet = errors.New("admin pin not set")
)

// ValidationError reports malformed input to a mutating call. The
// document is returned unchanged alongside it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError reports a sale that exceeds the available
// stock. No partial sale is applied.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d (short %d)",
		e.ProductID, e.Requested, e.Available, e.Requested-e.Available)
}
