package user_test

import (
	"fmt"
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected user.Role
		}{
			{"buyer", user.RoleBuyer},
			{"vendor", user.RoleVendor},
			{"intermediary", user.RoleIntermediary},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.value), func(t *testing.T) {
				role, err := user.RoleFromString(tc.value)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, role)
				assert.Equal(t, tc.value, role.String())
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject unknown role names", func(t *testing.T) {
		_, err := user.RoleFromString("admin")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject RoleUnknown", func(t *testing.T) {
		require.Error(t, user.RoleUnknown.Validate())
		assert.Equal(t, "unknown", user.RoleUnknown.String())
	})
}

func TestNewUser(t *testing.T) {
	validAddress := func(t *testing.T) *kernel.Address {
		t.Helper()
		addr, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
		require.NoError(t, err)
		return &addr
	}

	t.Run("should create user with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		testUser, err := user.NewUser(
			id, "Maria Silva", "maria@example.com", "$2a$10$hash",
			user.RoleVendor, "+244 900 000 000", validAddress(t),
		)

		require.NoError(t, err)
		require.NoError(t, testUser.Validate())
		assert.True(t, id.IsEqual(testUser.ID()))
		assert.Equal(t, "Maria Silva", testUser.Name())
		assert.Equal(t, "maria@example.com", testUser.Email())
		assert.Equal(t, "$2a$10$hash", testUser.PasswordHash())
		assert.Equal(t, user.RoleVendor, testUser.Role())
		assert.Equal(t, "+244 900 000 000", testUser.Phone())
		require.NotNil(t, testUser.Address())
	})

	t.Run("should allow missing phone and address", func(t *testing.T) {
		testUser, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "$2a$10$hash",
			user.RoleBuyer, "", nil,
		)

		require.NoError(t, err)
		assert.Empty(t, testUser.Phone())
		assert.Nil(t, testUser.Address())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := user.NewUser(
			kernel.NewUUID(), "", "maria@example.com", "$2a$10$hash",
			user.RoleBuyer, "", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed emails", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "@example.com", "maria@"} {
			t.Run(fmt.Sprintf("should reject %q", email), func(t *testing.T) {
				_, err := user.NewUser(
					kernel.NewUUID(), "Maria Silva", email, "$2a$10$hash",
					user.RoleBuyer, "", nil,
				)

				require.Error(t, err)
			})
		}
	})

	t.Run("should reject empty password hash", func(t *testing.T) {
		_, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "",
			user.RoleBuyer, "", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "$2a$10$hash",
			user.RoleUnknown, "", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var testUser user.User

		require.ErrorIs(t, testUser.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		t.Helper()
		testUser, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "$2a$10$hash",
			user.RoleBuyer, "+244 900 000 000", nil,
		)
		require.NoError(t, err)
		return testUser
	}

	t.Run("should update name, phone, and address", func(t *testing.T) {
		testUser := newUser(t)
		addr, err := kernel.NewAddress("Avenida Central, 45", "Benguela", "2000-002")
		require.NoError(t, err)

		err = testUser.UpdateProfile("Maria dos Santos", "+244 911 111 111", &addr)

		require.NoError(t, err)
		assert.Equal(t, "Maria dos Santos", testUser.Name())
		assert.Equal(t, "+244 911 111 111", testUser.Phone())
		require.NotNil(t, testUser.Address())
		assert.True(t, addr.IsEqual(*testUser.Address()))
	})

	t.Run("should clear phone and address", func(t *testing.T) {
		testUser := newUser(t)

		err := testUser.UpdateProfile("Maria Silva", "", nil)

		require.NoError(t, err)
		assert.Empty(t, testUser.Phone())
		assert.Nil(t, testUser.Address())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		testUser := newUser(t)

		err := testUser.UpdateProfile("", "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Maria Silva", testUser.Name())
	})

	t.Run("should keep email and role unchanged", func(t *testing.T) {
		testUser := newUser(t)

		require.NoError(t, testUser.UpdateProfile("Maria dos Santos", "", nil))

		assert.Equal(t, "maria@example.com", testUser.Email())
		assert.Equal(t, user.RoleBuyer, testUser.Role())
	})
}

func TestUser_ChangePassword(t *testing.T) {
	t.Run("should replace password hash", func(t *testing.T) {
		testUser, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "$2a$10$old",
			user.RoleBuyer, "", nil,
		)
		require.NoError(t, err)

		err = testUser.ChangePassword("$2a$10$new")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$new", testUser.PasswordHash())
	})

	t.Run("should reject empty hash", func(t *testing.T) {
		testUser, err := user.NewUser(
			kernel.NewUUID(), "Maria Silva", "maria@example.com", "$2a$10$old",
			user.RoleBuyer, "", nil,
		)
		require.NoError(t, err)

		err = testUser.ChangePassword("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "$2a$10$old", testUser.PasswordHash())
	})
}
