package services_test

import (
	"testing"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, vendorID kernel.UUID, name string, price float64) *product.Product {
	t.Helper()

	unitPrice, err := kernel.NewMoney(price)
	require.NoError(t, err)

	testProduct, err := product.NewProduct(
		kernel.NewUUID(), vendorID, name, "", unitPrice, "", 100, nil,
	)
	require.NoError(t, err)

	return testProduct
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
	require.NoError(t, err)

	return addr
}

func TestCheckoutSplitter_Split(t *testing.T) {
	splitter := services.NewCheckoutSplitter()

	t.Run("should produce one order per vendor", func(t *testing.T) {
		buyerID := kernel.NewUUID()
		vendorA := kernel.NewUUID()
		vendorB := kernel.NewUUID()
		now := time.Now()

		cart := []services.CartEntry{
			{Product: mustProduct(t, vendorA, "Tomatoes 1kg", 3.95), Quantity: 4},
			{Product: mustProduct(t, vendorB, "Honey 500g", 12.31), Quantity: 2},
			{Product: mustProduct(t, vendorA, "Onions 1kg", 2.10), Quantity: 1},
		}

		orders, err := splitter.Split(buyerID, cart, mustAddress(t), order.PaymentMethodCard, false, now)

		require.NoError(t, err)
		require.Len(t, orders, 2)

		// Vendor groups keep first-seen order: vendorA first, then vendorB.
		assert.True(t, vendorA.IsEqual(orders[0].Vendor()))
		assert.True(t, vendorB.IsEqual(orders[1].Vendor()))

		require.Len(t, orders[0].Items(), 2)
		assert.Equal(t, "Tomatoes 1kg", orders[0].Items()[0].Name())
		assert.Equal(t, "Onions 1kg", orders[0].Items()[1].Name())
		require.Len(t, orders[1].Items(), 1)
		assert.Equal(t, "Honey 500g", orders[1].Items()[0].Name())

		for _, o := range orders {
			assert.True(t, buyerID.IsEqual(o.Buyer()))
			assert.Equal(t, order.StatusPending, o.Status())
			assert.Equal(t, now, o.CreatedAt())
			assert.Equal(t, order.PaymentMethodCard, o.PaymentMethod())
		}
	})

	t.Run("should snapshot product names and prices", func(t *testing.T) {
		vendorID := kernel.NewUUID()
		testProduct := mustProduct(t, vendorID, "Tomatoes 1kg", 3.95)
		cart := []services.CartEntry{{Product: testProduct, Quantity: 4}}

		orders, err := splitter.Split(
			kernel.NewUUID(), cart, mustAddress(t), order.PaymentMethodCard, false, time.Now(),
		)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		newPrice, err := kernel.NewMoney(9.99)
		require.NoError(t, err)
		require.NoError(t, testProduct.Update("Renamed", "", newPrice, "", 100, nil))

		item := orders[0].Items()[0]
		assert.Equal(t, "Tomatoes 1kg", item.Name())
		assert.InDelta(t, 3.95, item.UnitPrice().Amount(), 1e-9)
	})

	t.Run("should compute per-vendor subtotals and commissions", func(t *testing.T) {
		vendorA := kernel.NewUUID()
		vendorB := kernel.NewUUID()

		cart := []services.CartEntry{
			{Product: mustProduct(t, vendorA, "Tomatoes 1kg", 3.95), Quantity: 4},
			{Product: mustProduct(t, vendorA, "Honey 500g", 12.31), Quantity: 2},
			{Product: mustProduct(t, vendorB, "Cheese 300g", 10.00), Quantity: 1},
		}

		orders, err := splitter.Split(
			kernel.NewUUID(), cart, mustAddress(t), order.PaymentMethodCard, true, time.Now(),
		)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.InDelta(t, 40.42, orders[0].Subtotal().Amount(), 1e-9)
		assert.InDelta(t, 4.04, orders[0].DeliveryCommission().Amount(), 1e-9)
		assert.InDelta(t, 10.00, orders[1].Subtotal().Amount(), 1e-9)
		assert.InDelta(t, 1.00, orders[1].DeliveryCommission().Amount(), 1e-9)
	})

	t.Run("should start delivery axis when delivery is requested", func(t *testing.T) {
		cart := []services.CartEntry{
			{Product: mustProduct(t, kernel.NewUUID(), "Tomatoes 1kg", 3.95), Quantity: 1},
		}

		orders, err := splitter.Split(
			kernel.NewUUID(), cart, mustAddress(t), order.PaymentMethodCashOnDelivery, true, time.Now(),
		)

		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.NotNil(t, orders[0].DeliveryStatus())
		assert.Equal(t, order.DeliveryPending, *orders[0].DeliveryStatus())
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := splitter.Split(
			kernel.NewUUID(), nil, mustAddress(t), order.PaymentMethodCard, false, time.Now(),
		)

		require.ErrorIs(t, err, services.ErrEmptyCart)
	})

	t.Run("should reject invalid quantities", func(t *testing.T) {
		cart := []services.CartEntry{
			{Product: mustProduct(t, kernel.NewUUID(), "Tomatoes 1kg", 3.95), Quantity: 0},
		}

		_, err := splitter.Split(
			kernel.NewUUID(), cart, mustAddress(t), order.PaymentMethodCard, false, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject unconstructed products", func(t *testing.T) {
		cart := []services.CartEntry{
			{Product: &product.Product{}, Quantity: 1},
		}

		_, err := splitter.Split(
			kernel.NewUUID(), cart, mustAddress(t), order.PaymentMethodCard, false, time.Now(),
		)

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}
