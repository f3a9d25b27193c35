package models

import "fmt"

// ValidationError reports a rejected input value. The inventory is left
// unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing an unknown product id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ID)
}

// InsufficientStockError reports a sale exceeding the available stock.
// The sale is rejected, not clamped.
type InsufficientStockError struct {
	ID        string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: available %d, requested %d",
		e.ID, e.Available, e.Requested)
}
