package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		view := NewView("cart-1", nil)

		require.NotNil(t, view.Items)
		require.Empty(t, view.Items)
		require.Equal(t, "0.00", view.Total)
		require.Equal(t, 0, view.ItemCount)
	})

	t.Run("total is exact to two places", func(t *testing.T) {
		tenCents, err := decimal.NewFromString("0.10")
		require.NoError(t, err)
		twentyCents, err := decimal.NewFromString("0.20")
		require.NoError(t, err)

		view := NewView("cart-1", []ItemView{
			{ID: "i-1", Quantity: 3, Product: ProductSnapshot{ID: "p-1", Price: tenCents}},
			{ID: "i-2", Quantity: 1, Product: ProductSnapshot{ID: "p-2", Price: twentyCents}},
		})

		require.Equal(t, "0.50", view.Total)
	})

	t.Run("item count is distinct lines, not units", func(t *testing.T) {
		p := ProductSnapshot{ID: "p-1", Price: decimal.NewFromInt(5)}
		view := NewView("cart-1", []ItemView{
			{ID: "i-1", Quantity: 7, Product: p},
			{ID: "i-2", Quantity: 1, Product: p},
		})

		require.Equal(t, 2, view.ItemCount)
		require.Equal(t, "40.00", view.Total)
	})
}
