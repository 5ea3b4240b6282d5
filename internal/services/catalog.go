package services

import (
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

// DefaultProducts returns the demo catalog the shells start with:
// three stocked items, a license key and a per-order-capped shipping
// fee, with promotions attached to the first, second and fourth entry.
func DefaultProducts() []ProductConfig {
	return []ProductConfig{
		{
			Kind:      KindStocked,
			Name:      "MacBook Air M2",
			Price:     domain.NewMoney(1450),
			Stock:     100,
			Promotion: domain.NewSecondHalfPrice("Second Half price!"),
		},
		{
			Kind:      KindStocked,
			Name:      "Bose QuietComfort Earbuds",
			Price:     domain.NewMoney(250),
			Stock:     500,
			Promotion: domain.NewThirdOneFree("Third One Free!"),
		},
		{
			Kind:  KindStocked,
			Name:  "Google Pixel 7",
			Price: domain.NewMoney(500),
			Stock: 250,
		},
		{
			Kind:      KindDigital,
			Name:      "Windows License",
			Price:     domain.NewMoney(125),
			Promotion: mustPercentDiscount("30% off!", 30),
		},
		{
			Kind:        KindLimited,
			Name:        "Shipping",
			Price:       domain.NewMoney(10),
			Stock:       250,
			MaxPerOrder: 1,
		},
	}
}

// mustPercentDiscount builds a PercentDiscount from a fixed, known-good
// percentage and panics otherwise; only for static catalog definitions.
func mustPercentDiscount(name string, percent float64) *domain.PercentDiscount {
	p, err := domain.NewPercentDiscount(name, percent)
	if err != nil {
		panic(err)
	}
	return p
}
