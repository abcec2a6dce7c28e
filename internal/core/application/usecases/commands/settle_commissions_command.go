package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// SettleCommissionsCommand triggers settlement of delivery commissions for
// all delivered orders that still carry an unsettled commission.
// This batch operation is run periodically by the scheduler.
//
// Example:
//
//	cmd := NewSettleCommissionsCommand()
//	handler := NewSettleCommissionsCommandHandler(uowFactory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Commission settlement failed: %v", err)
//	}
type SettleCommissionsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrSettleCommissionsCommandIsNotConstructed = errors.New(
		"SettleCommissionsCommand must be created via NewSettleCommissionsCommand constructor",
	)
)

// NewSettleCommissionsCommand creates a command to trigger commission settlement.
// This is a parameterless command that processes all eligible orders.
func NewSettleCommissionsCommand() SettleCommissionsCommand {
	command := SettleCommissionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSettleCommissionsCommandIsNotConstructed if validation fails.
func (c *SettleCommissionsCommand) Validate() error {
	return c.guard.Validate(ErrSettleCommissionsCommandIsNotConstructed)
}
