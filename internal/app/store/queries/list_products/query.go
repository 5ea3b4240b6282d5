package list_products

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/store/contracts"
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

// ProductView is the read-side projection of one catalog entry.
type ProductView struct {
	Name        string
	Price       string
	Stock       int64
	Unlimited   bool
	MaxPerOrder int64 // zero when the product has no per-order cap
	Active      bool
	Promotion   string
	Display     string
}

// Query lists catalog entries for display.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new list products query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute returns product views in catalog order. With activeOnly set,
// inactive products are filtered out.
func (q *Query) Execute(ctx context.Context, activeOnly bool) []ProductView {
	var products []domain.Product
	if activeOnly {
		products = q.catalog.ActiveProducts()
	} else {
		products = q.catalog.Products()
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, buildView(p))
	}
	return views
}

func buildView(p domain.Product) ProductView {
	view := ProductView{
		Name:    p.Name(),
		Price:   p.Price().String(),
		Stock:   p.Stock(),
		Active:  p.IsActive(),
		Display: p.Describe(),
	}
	if promo := p.Promotion(); promo != nil {
		view.Promotion = promo.Name()
	}
	switch v := p.(type) {
	case *domain.DigitalProduct:
		view.Unlimited = true
	case *domain.LimitedProduct:
		view.MaxPerOrder = v.MaxPerOrder()
	}
	return view
}
