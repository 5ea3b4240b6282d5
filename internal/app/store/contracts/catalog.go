package contracts

import (
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

// Catalog is the storefront surface the shells consume. *domain.Store
// is the canonical implementation; the interface exists so use cases
// and transports depend on behavior, not on the concrete store.
type Catalog interface {
	// Products returns the full catalog snapshot in insertion order.
	Products() []domain.Product

	// ActiveProducts returns the currently purchasable products,
	// preserving catalog order.
	ActiveProducts() []domain.Product

	// FindByName returns the first product with the given name.
	FindByName(name string) (domain.Product, bool)

	// TotalStock sums tracked stock over all held products.
	TotalStock() int64

	// TotalStockReport renders the stock total for display.
	TotalStockReport() string

	// Order executes a multi-line order atomically: it either commits
	// every line or mutates nothing.
	Order(lines []domain.LineItem) (*domain.OrderReceipt, error)

	// AddProduct appends a product to the catalog.
	AddProduct(p domain.Product)

	// RemoveProduct removes a product by identity; absent products are
	// a no-op.
	RemoveProduct(p domain.Product)
}
