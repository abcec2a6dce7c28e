package commands

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler handles delivery claims by intermediaries.
//
// The claim itself is a compare-and-set in the repository: it succeeds only
// if the order still has no intermediary at the moment of the write. The
// aggregate transition runs first so that domain rule violations (no delivery
// leg, already claimed, wrong state) are reported before touching storage.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery claims.
// Requires a DeliveryUoWFactory for user lookups and order persistence.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery claim command.
//
// Returns:
//   - nil when the claim succeeded
//   - UnauthorizedError when the actor is not an intermediary
//   - ConflictError when another intermediary claimed the delivery first
//   - IllegalTransitionError when the order has no claimable delivery leg
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	actor, err := uow.UserRepository().Get(ctx, cmd.IntermediaryID())
	if err != nil {
		return err
	}
	if actor.Role() != user.RoleIntermediary {
		return errs.NewUnauthorizedError("accept delivery", cmd.IntermediaryID().String())
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AcceptDelivery(cmd.IntermediaryID()); err != nil {
		return err
	}

	if err = orderRepo.ClaimDelivery(ctx, cmd.OrderID(), cmd.IntermediaryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
