package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents an intermediary's request to claim the
// delivery leg of an order. At most one intermediary can hold a delivery;
// concurrent claims are resolved atomically in the repository and losers
// receive a ConflictError.
//
// Example:
//
//	cmd, err := NewAcceptDeliveryCommand(orderID, intermediaryID)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewAcceptDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // errs.ErrConflict means another intermediary won the race
//	    return err
//	}
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	intermediaryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command to claim a delivery leg.
// Validates that both IDs are valid.
// Returns an error if any validation fails.
func NewAcceptDeliveryCommand(orderID, intermediaryID kernel.UUID) (AcceptDeliveryCommand, error) {
	acceptCommand := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setIntermediaryID(intermediaryID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptDeliveryCommandIsNotConstructed if validation fails.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order whose delivery is claimed.
func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IntermediaryID returns the ID of the claiming intermediary.
func (c AcceptDeliveryCommand) IntermediaryID() kernel.UUID {
	return c.intermediaryID
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryCommand) setIntermediaryID(intermediaryID kernel.UUID) error {
	if err := intermediaryID.Validate(); err != nil {
		return err
	}

	c.intermediaryID = intermediaryID
	return nil
}
