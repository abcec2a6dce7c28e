package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrNameIsRequired is returned when attempting to create a user without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPasswordHashIsRequired is returned when attempting to create a user without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents a registered marketplace participant.
// It is an aggregate root that manages user identity, credentials, and profile data.
//
// Key responsibilities:
//   - Managing user identity (ID, email, role)
//   - Holding the password hash used for authentication
//   - Managing mutable profile data (name, phone, default address)
//
// Business rules:
//   - User must have a valid UUID, non-empty name, well-formed email,
//     non-empty password hash, and a valid role
//   - The email and role are immutable after registration
//   - The default address is optional and only used to pre-fill checkout
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable display name
	name string
	// email is the login identifier, unique across the marketplace
	email string
	// passwordHash is the bcrypt hash of the user's password
	passwordHash string
	// role is what the user does in the marketplace
	role Role
	// phone is an optional contact number
	phone string
	// address is the optional default delivery address
	address *kernel.Address
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with the specified parameters.
// This is the only way to create a valid User instance.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Display name (must be non-empty)
//   - email: Login email (must be well-formed)
//   - passwordHash: bcrypt hash of the password (must be non-empty;
//     hashing happens outside the domain)
//   - role: What the user does in the marketplace
//   - phone: Optional contact number
//   - address: Optional default delivery address
//
// Returns:
//   - *User: A fully initialized user
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	phone string,
	address *kernel.Address,
) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
		user.setAddress(address),
	); err != nil {
		return nil, err
	}

	user.phone = phone
	return user, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage.
// The restored user behaves identically to one created through NewUser.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	phone string,
	address *kernel.Address,
) (*User, error) {
	return NewUser(id, name, email, passwordHash, role, phone, address)
}

// Validate checks if the User was properly constructed using the NewUser constructor.
// The zero value of User is invalid and will fail this validation.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users for equality based on their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	if other == nil {
		return false
	}
	return u.id.IsEqual(other.id)
}

// ID returns the unique identifier of the user.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns what the user does in the marketplace.
func (u *User) Role() Role {
	return u.role
}

// Phone returns the user's contact number, or an empty string if unset.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's default delivery address.
// Returns nil when no default address is set.
func (u *User) Address() *kernel.Address {
	return u.address
}

// UpdateProfile changes the user's mutable profile data.
// The email and role are fixed at registration and cannot be changed here.
//
// Parameters:
//   - name: New display name (must be non-empty)
//   - phone: New contact number (empty clears it)
//   - address: New default delivery address (nil clears it)
//
// Returns:
//   - nil on success
//   - error if the new name or address is invalid
func (u *User) UpdateProfile(name string, phone string, address *kernel.Address) error {
	if err := errors.Join(
		u.setName(name),
		u.setAddress(address),
	); err != nil {
		return err
	}

	u.phone = phone
	if address == nil {
		u.address = nil
	}
	return nil
}

// ChangePassword replaces the stored password hash.
// Hashing the new password happens outside the domain.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// setID sets the user's unique identifier with validation.
// This is an internal setter used during user construction.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

// setName sets the user's display name with validation.
func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	u.name = name
	return nil
}

// setEmail sets the user's login email with validation.
// Full RFC conformance is checked at the transport layer; the domain only
// rejects values that cannot possibly be an email.
func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}

	u.email = email
	return nil
}

// setPasswordHash sets the stored password hash with validation.
func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	u.passwordHash = passwordHash
	return nil
}

// setRole sets the user's role with validation.
// This is an internal setter used during user construction.
func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}

// setAddress sets the optional default delivery address with validation.
func (u *User) setAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}

	if err := address.Validate(); err != nil {
		return err
	}

	u.address = address
	return nil
}
