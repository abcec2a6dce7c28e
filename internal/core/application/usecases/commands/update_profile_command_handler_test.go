package commands_test

import (
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/commands"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProfileCommand_MissingName(t *testing.T) {
	_, err := commands.NewUpdateProfileCommand(kernel.NewUUID(), "", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := testUser(t, user.RoleBuyer)
	address, err := kernel.NewAddress("Rua da Missão 12", "Lubango", "1000")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProfileCommand(
		account.ID(), "Maria A. Silva", "+244923999888", &address,
	)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, account.ID()).Return(account, nil).Once(),
		repo.On("Update", mock.Anything, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Maria A. Silva", account.Name())
	assert.Equal(t, "+244923999888", account.Phone())
	require.NotNil(t, account.Address())
	assert.True(t, account.Address().IsEqual(address))
}

func TestUpdateProfileCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewUpdateProfileCommand(userID, "Maria Silva", "", nil)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("user", userID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
