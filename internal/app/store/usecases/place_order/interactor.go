package place_order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/store/contracts"
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

// RequestLine is one requested (product name, quantity) pair.
type RequestLine struct {
	ProductName string
	Quantity    int64
}

// Request contains the data needed to place an order.
type Request struct {
	Lines []RequestLine
}

// Interactor handles the place order use case.
type Interactor struct {
	catalog contracts.Catalog
	logger  *zap.Logger
}

// NewInteractor creates a new place order interactor.
func NewInteractor(catalog contracts.Catalog, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute resolves the requested lines against the catalog and commits
// the order atomically. A line naming an unknown product rejects the
// whole request before the store is touched.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.OrderReceipt, error) {
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	lines := make([]domain.LineItem, 0, len(req.Lines))
	for _, rl := range req.Lines {
		product, ok := i.catalog.FindByName(rl.ProductName)
		if !ok {
			return nil, fmt.Errorf("%s: %w", rl.ProductName, domain.ErrProductNotFound)
		}
		lines = append(lines, domain.LineItem{Product: product, Quantity: rl.Quantity})
	}

	receipt, err := i.catalog.Order(lines)
	if err != nil {
		i.logger.Warn("order rejected",
			zap.Int("line_count", len(lines)),
			zap.Error(err),
		)
		return nil, err
	}

	i.logger.Info("order placed",
		zap.String("order_id", receipt.ID),
		zap.Int("line_count", len(receipt.Lines)),
		zap.String("total", receipt.Total.String()),
	)

	return receipt, nil
}
