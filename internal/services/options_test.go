package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

func TestNewServiceOptions(t *testing.T) {
	t.Run("wires the default catalog", func(t *testing.T) {
		opts, err := NewServiceOptions(Config{Products: DefaultProducts()})
		require.NoError(t, err)
		defer opts.Close()

		products := opts.Catalog.Products()
		require.Len(t, products, 5)
		assert.Equal(t, "MacBook Air M2", products[0].Name())
		assert.NotNil(t, products[0].Promotion())
		assert.IsType(t, &domain.DigitalProduct{}, products[3])
		assert.IsType(t, &domain.LimitedProduct{}, products[4])
		assert.Equal(t, int64(1100), opts.Catalog.TotalStock())
	})

	t.Run("orders flow into the journal", func(t *testing.T) {
		opts, err := NewServiceOptions(Config{Products: DefaultProducts()})
		require.NoError(t, err)
		defer opts.Close()

		pixel, ok := opts.Catalog.FindByName("Google Pixel 7")
		require.True(t, ok)

		_, err = opts.Catalog.Order([]domain.LineItem{{Product: pixel, Quantity: 2}})
		require.NoError(t, err)

		entries := opts.Journal.Entries("order.placed", 0)
		assert.Len(t, entries, 1)
	})

	t.Run("invalid product config fails wiring", func(t *testing.T) {
		_, err := NewServiceOptions(Config{Products: []ProductConfig{
			{Kind: KindStocked, Name: "", Price: domain.NewMoney(10), Stock: 5},
		}})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("unknown kind fails wiring", func(t *testing.T) {
		_, err := NewServiceOptions(Config{Products: []ProductConfig{
			{Kind: ProductKind("mystery"), Name: "X", Price: domain.NewMoney(10)},
		}})
		assert.Error(t, err)
	})
}

func TestBuildProduct(t *testing.T) {
	t.Run("limited product carries its cap", func(t *testing.T) {
		p, err := buildProduct(ProductConfig{
			Kind:        KindLimited,
			Name:        "Shipping",
			Price:       domain.NewMoney(10),
			Stock:       250,
			MaxPerOrder: 1,
		})
		require.NoError(t, err)

		limited, ok := p.(*domain.LimitedProduct)
		require.True(t, ok)
		assert.Equal(t, int64(1), limited.MaxPerOrder())
	})

	t.Run("promotion is attached when configured", func(t *testing.T) {
		p, err := buildProduct(ProductConfig{
			Kind:      KindDigital,
			Name:      "Windows License",
			Price:     domain.NewMoney(125),
			Promotion: mustPercentDiscount("30% off!", 30),
		})
		require.NoError(t, err)
		require.NotNil(t, p.Promotion())
		assert.Equal(t, "30% off!", p.Promotion().Name())
	})
}
