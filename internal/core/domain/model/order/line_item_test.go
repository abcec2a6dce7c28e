package order_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create line item with valid parameters", func(t *testing.T) {
		productID := kernel.NewUUID()
		unitPrice, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		item, err := order.NewLineItem(productID, "Tomatoes 1kg", unitPrice, 4)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, productID.IsEqual(item.ProductID()))
		assert.Equal(t, "Tomatoes 1kg", item.Name())
		assert.InDelta(t, 3.95, item.UnitPrice().Amount(), 1e-9)
		assert.Equal(t, 4, item.Quantity())
	})

	t.Run("should compute line total", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		item, err := order.NewLineItem(kernel.NewUUID(), "Tomatoes 1kg", unitPrice, 4)
		require.NoError(t, err)

		assert.InDelta(t, 15.80, item.Total().Amount(), 1e-9)
	})

	t.Run("should reject invalid product ID", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		_, err = order.NewLineItem(kernel.UUID{}, "Tomatoes 1kg", unitPrice, 1)

		require.Error(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		_, err = order.NewLineItem(kernel.NewUUID(), "", unitPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed unit price", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "Tomatoes 1kg", kernel.Money{}, 1)

		require.Error(t, err)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		for _, quantity := range []int{0, -1, -100} {
			_, err = order.NewLineItem(kernel.NewUUID(), "Tomatoes 1kg", unitPrice, quantity)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var item order.LineItem

		require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
	})
}
