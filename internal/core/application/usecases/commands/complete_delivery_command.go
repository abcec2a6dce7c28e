package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the assigned intermediary's report that
// the goods were handed over. Completing the delivery also closes the
// fulfillment axis, so the order ends up delivered on both.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Validates that both IDs are valid.
// Returns an error if any validation fails.
func NewCompleteDeliveryCommand(orderID, actorID kernel.UUID) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setActorID(actorID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the delivered order.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the intermediary completing the delivery.
func (c CompleteDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
