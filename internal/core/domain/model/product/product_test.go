package product_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, vendorID kernel.UUID, stock int) *product.Product {
	t.Helper()

	price, err := kernel.NewMoney(3.95)
	require.NoError(t, err)

	testProduct, err := product.NewProduct(
		kernel.NewUUID(), vendorID, "Tomatoes 1kg", "Fresh from the farm",
		price, "vegetables", stock, []string{"https://cdn.example.com/tomatoes.jpg"},
	)
	require.NoError(t, err)

	return testProduct
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid parameters", func(t *testing.T) {
		vendorID := kernel.NewUUID()

		testProduct := mustProduct(t, vendorID, 25)

		require.NoError(t, testProduct.Validate())
		assert.True(t, vendorID.IsEqual(testProduct.Vendor()))
		assert.Equal(t, "Tomatoes 1kg", testProduct.Name())
		assert.Equal(t, "Fresh from the farm", testProduct.Description())
		assert.InDelta(t, 3.95, testProduct.Price().Amount(), 1e-9)
		assert.Equal(t, "vegetables", testProduct.Category())
		assert.Equal(t, 25, testProduct.Stock())
		assert.Equal(t, []string{"https://cdn.example.com/tomatoes.jpg"}, testProduct.Images())
	})

	t.Run("should allow zero stock and missing optionals", func(t *testing.T) {
		price, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		testProduct, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Tomatoes 1kg", "", price, "", 0, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, 0, testProduct.Stock())
		assert.Empty(t, testProduct.Images())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		price, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		_, err = product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "", "", price, "", 1, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed price", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Tomatoes 1kg", "", kernel.Money{}, "", 1, nil,
		)

		require.Error(t, err)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		price, err := kernel.NewMoney(3.95)
		require.NoError(t, err)

		_, err = product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), "Tomatoes 1kg", "", price, "", -1, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var testProduct product.Product

		require.ErrorIs(t, testProduct.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Update(t *testing.T) {
	t.Run("should update listing data", func(t *testing.T) {
		testProduct := mustProduct(t, kernel.NewUUID(), 25)
		newPrice, err := kernel.NewMoney(4.50)
		require.NoError(t, err)

		err = testProduct.Update("Cherry Tomatoes 500g", "Sweet variety", newPrice, "vegetables", 40, nil)

		require.NoError(t, err)
		assert.Equal(t, "Cherry Tomatoes 500g", testProduct.Name())
		assert.Equal(t, "Sweet variety", testProduct.Description())
		assert.InDelta(t, 4.50, testProduct.Price().Amount(), 1e-9)
		assert.Equal(t, 40, testProduct.Stock())
		assert.Empty(t, testProduct.Images())
	})

	t.Run("should reject invalid updates", func(t *testing.T) {
		testProduct := mustProduct(t, kernel.NewUUID(), 25)
		price, err := kernel.NewMoney(4.50)
		require.NoError(t, err)

		err = testProduct.Update("", "", price, "", -1, nil)

		require.Error(t, err)
		assert.Equal(t, "Tomatoes 1kg", testProduct.Name())
		assert.Equal(t, 25, testProduct.Stock())
	})
}

func TestProduct_Images(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		testProduct := mustProduct(t, kernel.NewUUID(), 25)

		images := testProduct.Images()
		images[0] = "mutated"

		assert.Equal(t, []string{"https://cdn.example.com/tomatoes.jpg"}, testProduct.Images())
	})
}
