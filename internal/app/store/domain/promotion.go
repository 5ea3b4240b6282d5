package domain

import (
	"github.com/shopspring/decimal"
)

// Promotion is a pricing strategy optionally attached to a product.
// Implementations are immutable after construction, hold no reference back
// to products, and are safe to share across many products at once.
//
// Apply computes the total price for quantity units at the given unit
// price. It never reads or mutates product state.
type Promotion interface {
	Name() string
	Apply(unitPrice Money, quantity int64) Money
}

// SecondHalfPrice charges every second unit at half the unit price.
type SecondHalfPrice struct {
	name string
}

// NewSecondHalfPrice creates a SecondHalfPrice promotion with a display name.
func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

// Name returns the display name of the promotion.
func (p *SecondHalfPrice) Name() string { return p.name }

// Apply charges ceil(q/2) units at full price and floor(q/2) at half price.
func (p *SecondHalfPrice) Apply(unitPrice Money, quantity int64) Money {
	fullPriceCount := (quantity + 1) / 2
	halfPriceCount := quantity / 2

	full := unitPrice.MulInt(fullPriceCount)
	half := unitPrice.Half().MulInt(halfPriceCount)
	return full.Add(half)
}

// ThirdOneFree gives one unit free for every three purchased.
type ThirdOneFree struct {
	name string
}

// NewThirdOneFree creates a ThirdOneFree promotion with a display name.
func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

// Name returns the display name of the promotion.
func (p *ThirdOneFree) Name() string { return p.name }

// Apply charges for q - floor(q/3) units.
func (p *ThirdOneFree) Apply(unitPrice Money, quantity int64) Money {
	freeItems := quantity / 3
	paidItems := quantity - freeItems
	return unitPrice.MulInt(paidItems)
}

// PercentDiscount applies a flat percentage discount to the line total.
type PercentDiscount struct {
	name    string
	percent float64

	// Cached (100-percent)/100 so Apply allocates nothing extra.
	factor Money
}

// NewPercentDiscount creates a PercentDiscount. The percentage must be
// strictly between 0 and 100.
func NewPercentDiscount(name string, percent float64) (*PercentDiscount, error) {
	if percent <= 0 || percent >= 100 {
		return nil, ErrInvalidPercent
	}

	factor := decimal.NewFromInt(100).
		Sub(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100))

	return &PercentDiscount{
		name:    name,
		percent: percent,
		factor:  newMoneyFromDecimal(factor),
	}, nil
}

// Name returns the display name of the promotion.
func (p *PercentDiscount) Name() string { return p.name }

// Percent returns the configured discount percentage.
func (p *PercentDiscount) Percent() float64 { return p.percent }

// Apply discounts the full line total by the configured percentage.
func (p *PercentDiscount) Apply(unitPrice Money, quantity int64) Money {
	return unitPrice.MulInt(quantity).Mul(p.factor)
}
