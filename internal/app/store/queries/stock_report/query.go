package stock_report

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/store/contracts"
)

// Report summarizes the stock held across the whole catalog.
type Report struct {
	TotalItems int64
	Summary    string
}

// Query produces the total stock report.
type Query struct {
	catalog contracts.Catalog
}

// NewQuery creates a new stock report query.
func NewQuery(catalog contracts.Catalog) *Query {
	return &Query{catalog: catalog}
}

// Execute sums tracked stock over every held product, active or not.
func (q *Query) Execute(ctx context.Context) Report {
	return Report{
		TotalItems: q.catalog.TotalStock(),
		Summary:    q.catalog.TotalStockReport(),
	}
}
