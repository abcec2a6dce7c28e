package commands_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/commands"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand(
		"Amélia dos Santos", "amelia@example.com", "s3cret-pass",
		user.RoleVendor, "+244923000111", nil,
	)
	require.NoError(t, err)
	assert.Equal(t, "Amélia dos Santos", cmd.Name())
	assert.Equal(t, "amelia@example.com", cmd.Email())
	assert.Equal(t, user.RoleVendor, cmd.Role())
	assert.Nil(t, cmd.Address())
}

func TestNewRegisterUserCommand_WithAddress(t *testing.T) {
	address, err := kernel.NewAddress("Rua da Missão 12", "Lubango", "1000")
	require.NoError(t, err)

	cmd, err := commands.NewRegisterUserCommand(
		"Amélia dos Santos", "amelia@example.com", "s3cret-pass",
		user.RoleBuyer, "", &address,
	)
	require.NoError(t, err)
	require.NotNil(t, cmd.Address())
	assert.True(t, cmd.Address().IsEqual(address))
}

func TestNewRegisterUserCommand_MissingName(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		"", "amelia@example.com", "s3cret-pass", user.RoleBuyer, "", nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterUserCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		"Amélia dos Santos", "amelia@example.com", "short", user.RoleBuyer, "", nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterUserCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(
		"Amélia dos Santos", "amelia@example.com", "s3cret-pass", user.RoleUnknown, "", nil,
	)
	require.Error(t, err)
}
