package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// AdvanceFulfillmentCommandHandler handles fulfillment-axis transitions.
// It loads the order, lets the aggregate enforce the transition and the
// actor's authority, and persists the result.
type AdvanceFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceFulfillmentCommandHandler creates a handler for fulfillment transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceFulfillmentCommandHandler(uowFactory OrderUoWFactory) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fulfillment transition command.
// Uses a transaction to ensure the status change is persisted or rolled back
// on error. Illegal transitions and unauthorized actors surface as
// IllegalTransitionError and UnauthorizedError from the aggregate.
func (h *AdvanceFulfillmentCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case order.StatusAccepted:
		err = aggregate.Accept(cmd.ActorID())
	case order.StatusInTransit:
		err = aggregate.StartTransit(cmd.ActorID())
	case order.StatusCancelled:
		err = aggregate.Cancel(cmd.ActorID())
	case order.StatusDelivered:
		err = aggregate.ConfirmReceipt(cmd.ActorID(), time.Now())
	default:
		err = errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s is not a reachable fulfillment status", cmd.Target()))
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
