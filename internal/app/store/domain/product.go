package domain

import "fmt"

// Product is the capability set shared by every sellable item in the
// catalog. The set of implementations is closed: the unexported methods
// keep outside packages from adding variants with their own purchase
// policy.
//
// Stock semantics vary by variant: StockedProduct and LimitedProduct
// track a finite quantity, DigitalProduct always reports zero and never
// runs out.
type Product interface {
	Name() string
	Price() Money
	Stock() int64
	IsActive() bool
	Activate()
	Deactivate()

	// SetStock replaces the tracked stock. Stock-tracked variants
	// deactivate automatically when the result is zero or below.
	SetStock(n int64)

	// Buy is the standalone purchase operation: it validates the
	// request, computes the promotion-aware price, mutates stock and
	// returns the total. Store.Order uses the validateLine/commitLine
	// split instead so deactivation can be deferred across a batch.
	Buy(quantity int64) (Money, error)

	// Describe returns a human-readable one-line summary.
	Describe() string

	Promotion() Promotion
	SetPromotion(p Promotion)
	RemovePromotion()

	// validateLine checks a single order line without mutating state.
	// reserved is the quantity earlier lines of the same order already
	// claimed from this product.
	validateLine(quantity, reserved int64) error

	// commitLine prices and applies a validated line. It must not fail
	// and must not deactivate the product; the store settles active
	// state once the whole batch is committed.
	commitLine(quantity int64) Money

	// settleStock applies the variant's end-of-order active-state rule.
	settleStock()
}

// baseProduct holds the attributes common to all variants.
type baseProduct struct {
	name      string
	price     Money
	stock     int64
	active    bool
	promotion Promotion
}

func validateProductInput(name string, price Money, stock int64) error {
	if name == "" {
		return ErrEmptyName
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (b *baseProduct) Name() string    { return b.name }
func (b *baseProduct) Price() Money    { return b.price }
func (b *baseProduct) Stock() int64    { return b.stock }
func (b *baseProduct) IsActive() bool  { return b.active }
func (b *baseProduct) Activate()       { b.active = true }
func (b *baseProduct) Deactivate()     { b.active = false }

func (b *baseProduct) Promotion() Promotion     { return b.promotion }
func (b *baseProduct) SetPromotion(p Promotion) { b.promotion = p }
func (b *baseProduct) RemovePromotion()         { b.promotion = nil }

// linePrice computes the total for quantity units, delegating to the
// attached promotion when one is set.
func (b *baseProduct) linePrice(quantity int64) Money {
	if b.promotion != nil {
		return b.promotion.Apply(b.price, quantity)
	}
	return b.price.MulInt(quantity)
}

// promotionSuffix renders the ", Promotion: ..." tail for Describe.
func (b *baseProduct) promotionSuffix() string {
	if b.promotion == nil {
		return ""
	}
	return fmt.Sprintf(", Promotion: %s", b.promotion.Name())
}

// StockedProduct is the standard variant: finite tracked stock that is
// decremented by purchase, with automatic deactivation at zero.
type StockedProduct struct {
	baseProduct
}

// NewStockedProduct creates a StockedProduct. The name must be non-empty,
// the price non-negative and the initial stock non-negative.
func NewStockedProduct(name string, price Money, stock int64) (*StockedProduct, error) {
	if err := validateProductInput(name, price, stock); err != nil {
		return nil, err
	}
	return &StockedProduct{baseProduct{
		name:   name,
		price:  price,
		stock:  stock,
		active: stock > 0,
	}}, nil
}

// SetStock replaces the tracked stock, deactivating the product when the
// result is zero or below. Reactivation is never automatic.
func (p *StockedProduct) SetStock(n int64) {
	p.stock = n
	if p.stock <= 0 {
		p.active = false
	}
}

// Buy purchases quantity units, returning the promotion-aware total.
func (p *StockedProduct) Buy(quantity int64) (Money, error) {
	if quantity <= 0 {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if quantity > p.stock {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrOutOfStock)
	}
	if !p.active {
		return Money{}, fmt.Errorf("%s: %w", p.name, ErrProductInactive)
	}

	total := p.linePrice(quantity)
	p.SetStock(p.stock - quantity)
	return total, nil
}

// Describe returns a one-line summary with the exact stock count.
func (p *StockedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: %d%s", p.name, p.price, p.stock, p.promotionSuffix())
}

func (p *StockedProduct) validateLine(quantity, reserved int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%s: %w", p.name, ErrInvalidQuantity)
	}
	if reserved+quantity > p.stock {
		return fmt.Errorf("%s: %w", p.name, ErrOutOfStock)
	}
	if !p.active {
		return fmt.Errorf("%s: %w", p.name, ErrProductInactive)
	}
	return nil
}

func (p *StockedProduct) commitLine(quantity int64) Money {
	total := p.linePrice(quantity)
	p.stock -= quantity
	return total
}

func (p *StockedProduct) settleStock() {
	if p.stock <= 0 {
		p.active = false
	}
}
