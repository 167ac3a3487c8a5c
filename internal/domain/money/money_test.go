//go:build unit

package money_test

import (
	"testing"

	"skillforge/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := money.New(1500, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(1500), m.Amount())
		assert.Equal(t, "USD", m.Currency())
	})

	t.Run("zero amount", func(t *testing.T) {
		m, err := money.New(0, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := money.New(-1, "USD")
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("empty currency defaults", func(t *testing.T) {
		m, err := money.New(100, "")
		require.NoError(t, err)
		assert.Equal(t, money.DefaultCurrency, m.Currency())
	})
}

func TestArithmetic(t *testing.T) {
	usd := func(cents int64) money.Money { return money.MustNew(cents, "USD") }

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, usd(300), usd(100).Add(usd(200)))
	})

	t.Run("sub clamps at zero", func(t *testing.T) {
		assert.Equal(t, usd(50), usd(150).SubClamped(usd(100)))
		assert.Equal(t, usd(0), usd(100).SubClamped(usd(150)))
	})

	t.Run("min", func(t *testing.T) {
		assert.Equal(t, usd(100), usd(100).Min(usd(200)))
		assert.Equal(t, usd(100), usd(200).Min(usd(100)))
	})

	t.Run("less than", func(t *testing.T) {
		assert.True(t, usd(99).LessThan(usd(100)))
		assert.False(t, usd(100).LessThan(usd(100)))
	})
}
