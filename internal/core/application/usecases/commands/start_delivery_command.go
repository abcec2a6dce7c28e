package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents the assigned intermediary's request to mark
// a delivery as picked up and underway. Only the intermediary who claimed the
// delivery may start it; the aggregate enforces this.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to start a claimed delivery.
// Validates that both IDs are valid.
// Returns an error if any validation fails.
func NewStartDeliveryCommand(orderID, actorID kernel.UUID) (StartDeliveryCommand, error) {
	startCommand := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setOrderID(orderID),
		startCommand.setActorID(actorID),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartDeliveryCommandIsNotConstructed if validation fails.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order being delivered.
func (c StartDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the ID of the intermediary starting the delivery.
func (c StartDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *StartDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
