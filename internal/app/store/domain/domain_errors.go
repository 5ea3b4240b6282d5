package domain

import "errors"

// Domain errors as sentinel values
var (
	// Construction errors
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrNegativePrice      = errors.New("product price cannot be negative")
	ErrNegativeStock      = errors.New("product stock cannot be negative")
	ErrInvalidMaxPerOrder = errors.New("maximum per-order quantity must be positive")
	ErrInvalidPercent     = errors.New("discount percentage must be between 0 and 100")

	// Purchase errors
	ErrInvalidQuantity      = errors.New("quantity to buy must be at least 1")
	ErrOutOfStock           = errors.New("not enough items in stock")
	ErrProductInactive      = errors.New("product is not active")
	ErrExceedsPerOrderLimit = errors.New("quantity exceeds the per-order limit")

	// Store errors
	ErrProductNotFound = errors.New("product not found in store")
	ErrEmptyOrder      = errors.New("order contains no line items")
)
