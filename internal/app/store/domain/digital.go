package domain

import "fmt"

// DigitalProduct is the unlimited-supply variant, for items with no
// physical stock such as license keys. It always reports zero stock,
// never decrements on purchase and never deactivates as a side effect
// of stock changes: zero stock does not mean sold out here.
type DigitalProduct struct {
	baseProduct
}

// NewDigitalProduct creates a DigitalProduct. Stock is forced to zero
// and the product starts active.
func NewDigitalProduct(name string, price Money) (*DigitalProduct, error) {
	if err := validateProductInput(name, price, 0); err != nil {
		return nil, err
	}
	return &DigitalProduct{baseProduct{
		name:   name,
		price:  price,
		stock:  0,
		active: true,
	}}, nil
}

// SetStock ignores the requested value: stock stays zero and the
// product is re-activated. The variant is never out of stock by
// construction, so the deactivate-on-zero rule does not apply.
func (p *DigitalProduct) SetStock(int64) {
	p.stock = 0
	p.active = true
}

// Buy purchases quantity units without touching stock. The product is
// re-activated before returning so a purchase can never leave it
// inactive.
func (p *DigitalProduct) Buy(quantity int64) (Money, error) {
	if quantity <= 0 {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if !p.active {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrProductInactive)
	}

	total := p.linePrice(quantity)
	p.active = true
	return total, nil
}

// Describe returns a one-line summary reporting unlimited quantity.
func (p *DigitalProduct) Describe() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: Unlimited%s", p.name, p.price, p.promotionSuffix())
}

func (p *DigitalProduct) validateLine(quantity, _ int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if !p.active {
		return fmt.Errorf("%s: %w", p.name, ErrProductInactive)
	}
	return nil
}

func (p *DigitalProduct) commitLine(quantity int64) Money {
	return p.linePrice(quantity)
}

func (p *DigitalProduct) settleStock() {
	p.active = true
}
