package commands

import (
	"context"
)

// SettleCommissionsCommandHandler settles delivery commissions in batch.
// Retrieves all delivered orders with an unsettled commission, marks each one
// settled, and persists the changes within a single transaction.
//
// Example:
//
//	handler := NewSettleCommissionsCommandHandler(uowFactory)
//	cmd := NewSettleCommissionsCommand()
//
//	// This would typically be called periodically by a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("commission settlement failed: %w", err)
//	}
type SettleCommissionsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSettleCommissionsCommandHandler creates a handler for commission settlement.
// Requires an OrderUoWFactory for transactional persistence.
func NewSettleCommissionsCommandHandler(uowFactory OrderUoWFactory) SettleCommissionsCommandHandler {
	return SettleCommissionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
// Orders that are not yet delivered are never returned by the repository, so
// every loaded aggregate is eligible. All settlements commit atomically.
func (h *SettleCommissionsCommandHandler) Handle(ctx context.Context, cmd SettleCommissionsCommand) error {
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
	orders, err := orderRepo.GetAllWithUnsettledCommission(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		if err = aggregate.SettleCommission(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
