package commands_test

import (
	"testing"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/commands"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrderWithCommission(t *testing.T) *order.Order {
	t.Helper()
	intermediaryID := kernel.NewUUID()
	aggregate := testOrder(t, kernel.NewUUID(), kernel.NewUUID(), true)
	require.NoError(t, aggregate.AcceptDelivery(intermediaryID))
	require.NoError(t, aggregate.StartDelivery(intermediaryID))
	require.NoError(t, aggregate.CompleteDelivery(intermediaryID, time.Now()))
	return aggregate
}

func TestSettleCommissionsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	first := deliveredOrderWithCommission(t)
	second := deliveredOrderWithCommission(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllWithUnsettledCommission", mock.Anything).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleCommissionsCommandHandler(factory)
	cmd := commands.NewSettleCommissionsCommand()
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, first.IsCommissionSettled())
	assert.True(t, second.IsCommissionSettled())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSettleCommissionsCommandHandler_Handle_NothingToSettle(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllWithUnsettledCommission", mock.Anything).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSettleCommissionsCommandHandler(factory)
	cmd := commands.NewSettleCommissionsCommand()
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
}
