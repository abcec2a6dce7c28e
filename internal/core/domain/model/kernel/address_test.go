package kernel_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with all fields", func(t *testing.T) {
		addr, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "Rua das Flores, 123", addr.Street())
		assert.Equal(t, "Luanda", addr.City())
		assert.Equal(t, "1000-001", addr.PostalCode())
	})

	t.Run("rejects empty street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Luanda", "1000-001")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty city", func(t *testing.T) {
		_, err := kernel.NewAddress("Rua das Flores, 123", "", "1000-001")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty postal code", func(t *testing.T) {
		_, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("reports every missing field", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "postalCode")
	})
}

func TestAddressValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		require.ErrorIs(t, addr.Validate(), kernel.ErrAddressIsNotConstructed)
	})
}

func TestAddressIsEqual(t *testing.T) {
	t.Run("same fields are equal", func(t *testing.T) {
		a, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
		require.NoError(t, err)
		b, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different fields are not equal", func(t *testing.T) {
		a, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
		require.NoError(t, err)
		b, err := kernel.NewAddress("Rua das Flores, 123", "Benguela", "1000-001")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestAddressString(t *testing.T) {
	t.Run("renders one line", func(t *testing.T) {
		addr, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
		require.NoError(t, err)

		assert.Equal(t, "Rua das Flores, 123, Luanda 1000-001", addr.String())
	})
}
