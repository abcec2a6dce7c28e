package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler handles the final delivery transition.
// Completion stamps the delivery time and closes both status axes.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing deliveries.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-delivery command.
// The aggregate rejects actors other than the assigned intermediary with an
// UnauthorizedError and premature completions with an IllegalTransitionError.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = aggregate.CompleteDelivery(cmd.ActorID(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
