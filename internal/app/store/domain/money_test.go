package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoneyFromString("249.99")
		require.NoError(t, err)
		assert.Equal(t, "249.99", m.String())
	})

	t.Run("whole units", func(t *testing.T) {
		m, err := NewMoneyFromString("1450")
		require.NoError(t, err)
		assert.Equal(t, 1450.0, m.Float64())
	})

	t.Run("garbage returns error", func(t *testing.T) {
		_, err := NewMoneyFromString("ten dollars")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		result := NewMoney(100).Add(NewMoney(50))
		assert.Equal(t, 150.0, result.Float64())
	})

	t.Run("sub", func(t *testing.T) {
		result := NewMoney(100).Sub(NewMoney(30))
		assert.Equal(t, 70.0, result.Float64())
	})

	t.Run("mul int", func(t *testing.T) {
		result := NewMoney(10).MulInt(5)
		assert.Equal(t, 50.0, result.Float64())
	})

	t.Run("half of odd amount stays exact", func(t *testing.T) {
		result := NewMoneyFromFloat(0.1).MulInt(3).Half()
		assert.Equal(t, "0.15", result.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small := NewMoney(10)
	big := NewMoney(20)

	assert.True(t, small.LessThan(big))
	assert.True(t, big.GreaterThan(small))
	assert.True(t, small.Equal(NewMoney(10)))
	assert.False(t, small.Equal(big))
}

func TestMoney_Signs(t *testing.T) {
	assert.True(t, NewMoney(0).IsZero())
	assert.True(t, NewMoney(-5).IsNegative())
	assert.True(t, NewMoney(5).IsPositive())
	assert.False(t, NewMoney(5).IsNegative())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1450.00", NewMoney(1450).String())
	assert.Equal(t, "0.50", NewMoneyFromFloat(0.5).String())
}
