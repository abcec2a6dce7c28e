package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request to change an account's profile
// data. Email, role, and password are out of scope here; a nil address clears
// the stored one.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	name    string
	phone   string
	address *kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a user's profile.
// Validates that the user ID is valid and the name is set.
// Returns an error if any validation fails.
func NewUpdateProfileCommand(
	userID kernel.UUID,
	name string,
	phone string,
	address *kernel.Address,
) (UpdateProfileCommand, error) {
	updateCommand := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setUserID(userID),
		updateCommand.setName(name),
		updateCommand.setAddress(address),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	updateCommand.phone = phone

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProfileCommandIsNotConstructed if validation fails.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the ID of the account being updated.
func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Phone returns the new phone number, possibly empty.
func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

// Address returns the new default address, nil to clear it.
func (c UpdateProfileCommand) Address() *kernel.Address {
	return c.address
}

func (c *UpdateProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProfileCommand) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
