package commands

import (
	"errors"
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
	"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
)

// AdvanceFulfillmentCommand represents a request to move an order along its
// fulfillment axis. The target status decides which transition is attempted:
//
//   - StatusAccepted: the vendor accepts the order
//   - StatusInTransit: the vendor sends the goods out
//   - StatusCancelled: the vendor calls the order off
//   - StatusDelivered: the buyer confirms receipt
//
// Who may perform each transition is enforced by the Order aggregate.
//
// Example:
//
//	cmd, err := NewAdvanceFulfillmentCommand(orderID, vendorID, order.StatusAccepted)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewAdvanceFulfillmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type AdvanceFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentCommand creates a command to advance an order's
// fulfillment status. Validates that both IDs are valid and the target is a
// reachable status (pending is never a target).
// Returns an error if any validation fails.
func NewAdvanceFulfillmentCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	target order.Status,
) (AdvanceFulfillmentCommand, error) {
	advanceCommand := AdvanceFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setOrderID(orderID),
		advanceCommand.setActorID(actorID),
		advanceCommand.setTarget(target),
	); err != nil {
		return AdvanceFulfillmentCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceFulfillmentCommandIsNotConstructed if validation fails.
func (c AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to advance.
func (c AdvanceFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the user requesting the transition.
func (c AdvanceFulfillmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested fulfillment status.
func (c AdvanceFulfillmentCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceFulfillmentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceFulfillmentCommand) setTarget(target order.Status) error {
	switch target {
	case order.StatusAccepted, order.StatusInTransit, order.StatusDelivered, order.StatusCancelled:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s is not a reachable fulfillment status", target))
	}
}
