package commands

import (
	"context"
)

// StartDeliveryCommandHandler handles the transition of a claimed delivery
// into the in-progress state.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
// Requires an OrderUoWFactory for transactional persistence.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-delivery command.
// The aggregate rejects actors other than the assigned intermediary with an
// UnauthorizedError and out-of-order starts with an IllegalTransitionError.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	if err = aggregate.StartDelivery(cmd.ActorID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
