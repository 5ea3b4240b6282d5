package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondHalfPrice_Apply(t *testing.T) {
	promo := NewSecondHalfPrice("Second Half price!")
	unitPrice := NewMoney(10)

	t.Run("odd quantity rounds full-price count up", func(t *testing.T) {
		// 3 at full price, 2 at half price
		total := promo.Apply(unitPrice, 5)
		assert.Equal(t, 40.0, total.Float64())
	})

	t.Run("even quantity splits evenly", func(t *testing.T) {
		total := promo.Apply(unitPrice, 4)
		assert.Equal(t, 30.0, total.Float64())
	})

	t.Run("single unit pays full price", func(t *testing.T) {
		total := promo.Apply(unitPrice, 1)
		assert.Equal(t, 10.0, total.Float64())
	})

	t.Run("name is exposed", func(t *testing.T) {
		assert.Equal(t, "Second Half price!", promo.Name())
	})
}

func TestThirdOneFree_Apply(t *testing.T) {
	promo := NewThirdOneFree("Third One Free!")
	unitPrice := NewMoney(10)

	t.Run("one free per three purchased", func(t *testing.T) {
		// 7 units, 2 free, 5 paid
		total := promo.Apply(unitPrice, 7)
		assert.Equal(t, 50.0, total.Float64())
	})

	t.Run("below three nothing is free", func(t *testing.T) {
		total := promo.Apply(unitPrice, 2)
		assert.Equal(t, 20.0, total.Float64())
	})

	t.Run("exact multiple of three", func(t *testing.T) {
		total := promo.Apply(unitPrice, 6)
		assert.Equal(t, 40.0, total.Float64())
	})
}

func TestNewPercentDiscount(t *testing.T) {
	t.Run("valid percentage", func(t *testing.T) {
		promo, err := NewPercentDiscount("30% off!", 30)
		require.NoError(t, err)
		assert.Equal(t, "30% off!", promo.Name())
		assert.Equal(t, 30.0, promo.Percent())
	})

	t.Run("zero percent returns error", func(t *testing.T) {
		_, err := NewPercentDiscount("free-for-all", 0)
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("hundred percent returns error", func(t *testing.T) {
		_, err := NewPercentDiscount("giveaway", 100)
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("negative percent returns error", func(t *testing.T) {
		_, err := NewPercentDiscount("markup", -10)
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})
}

func TestPercentDiscount_Apply(t *testing.T) {
	promo, err := NewPercentDiscount("30% off!", 30)
	require.NoError(t, err)

	t.Run("discounts the full line total", func(t *testing.T) {
		total := promo.Apply(NewMoney(10), 4)
		assert.Equal(t, 28.0, total.Float64())
	})

	t.Run("fractional result stays exact", func(t *testing.T) {
		total := promo.Apply(NewMoney(125), 1)
		assert.Equal(t, "87.50", total.String())
	})
}

func TestPromotions_AreSharable(t *testing.T) {
	// One promotion value attached to two products computes the same
	// totals for both; it carries no per-product state.
	promo := NewSecondHalfPrice("Second Half price!")

	first, err := NewStockedProduct("First", NewMoney(10), 10)
	require.NoError(t, err)
	second, err := NewStockedProduct("Second", NewMoney(10), 10)
	require.NoError(t, err)

	first.SetPromotion(promo)
	second.SetPromotion(promo)

	priceA, err := first.Buy(5)
	require.NoError(t, err)
	priceB, err := second.Buy(5)
	require.NoError(t, err)

	assert.True(t, priceA.Equal(priceB))
	assert.Equal(t, 40.0, priceA.Float64())
}
