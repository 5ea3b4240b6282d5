package domain

import "fmt"

// LimitedProduct tracks stock like StockedProduct but additionally caps
// every single purchase at a fixed maximum, e.g. one shipping fee per
// order. The cap is checked before stock, so exceeding it wins over an
// out-of-stock condition when both apply.
type LimitedProduct struct {
	StockedProduct
	maxPerOrder int64
}

// NewLimitedProduct creates a LimitedProduct with a per-order purchase
// cap. maxPerOrder must be positive.
func NewLimitedProduct(name string, price Money, stock, maxPerOrder int64) (*LimitedProduct, error) {
	if err := validateProductInput(name, price, stock); err != nil {
		return nil, err
	}
	if maxPerOrder <= 0 {
		return nil, ErrInvalidMaxPerOrder
	}
	return &LimitedProduct{
		StockedProduct: StockedProduct{baseProduct{
			name:   name,
			price:  price,
			stock:  stock,
			active: stock > 0,
		}},
		maxPerOrder: maxPerOrder,
	}, nil
}

// MaxPerOrder returns the per-order purchase cap.
func (p *LimitedProduct) MaxPerOrder() int64 { return p.maxPerOrder }

// Buy purchases quantity units, enforcing the per-order cap ahead of
// the stock and active checks.
func (p *LimitedProduct) Buy(quantity int64) (Money, error) {
	if quantity <= 0 {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if quantity > p.maxPerOrder {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrExceedsPerOrderLimit)
	}
	return p.StockedProduct.Buy(quantity)
}

// Describe returns a one-line summary including the per-order cap.
func (p *LimitedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: %d, Limited to %d per order%s",
		p.name, p.price, p.stock, p.maxPerOrder, p.promotionSuffix())
}

func (p *LimitedProduct) validateLine(quantity, reserved int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if quantity > p.maxPerOrder {
		return fmt.Errorf("%s: %w", p.name, ErrExceedsPerOrderLimit)
	}
	return p.StockedProduct.validateLine(quantity, reserved)
}
