package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create a marketplace account.
// The password travels in plain text inside the command and is hashed by the
// handler; it is never persisted as-is.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(
//	    "Amélia dos Santos", "amelia@example.com", "s3cret-pass",
//	    user.RoleVendor, "+244923000111", nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	userID, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	password string
	role     user.Role
	phone    string
	address  *kernel.Address

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Validates that the name, email, and role are set and the password meets the
// minimum length. Phone and address are optional.
// Returns an error if any validation fails.
func NewRegisterUserCommand(
	name string,
	email string,
	password string,
	role user.Role,
	phone string,
	address *kernel.Address,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setName(name),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setRole(role),
		registerCommand.setAddress(address),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	registerCommand.phone = phone

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name of the new account.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email of the new account.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain-text password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the marketplace role of the new account.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// Phone returns the contact phone number, possibly empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the optional default address, nil when not provided.
func (c RegisterUserCommand) Address() *kernel.Address {
	return c.address
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
