package kernel

import (
	"errors"
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a delivery destination captured at checkout time.
// Address is an immutable value object: once snapshotted onto an order it is
// independent of any later change to the buyer's profile address. The zero
// value of Address is invalid and will fail validation - use the constructor
// to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("Rua das Flores, 123", "Luanda", "1000-001")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: Rua das Flores, 123, Luanda 1000-001
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string
	guard      guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified fields.
// All three fields are required and must be non-empty.
//
// Parameters:
//   - street: Street name and number
//   - city: City name
//   - postalCode: Postal code
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error listing every missing field
func NewAddress(street, city, postalCode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address is properly constructed.
// Returns ErrAddressIsNotConstructed for zero-value instances.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name and number.
func (a Address) Street() string {
	return a.street
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode
}

// String returns a single-line rendering of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.postalCode)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}
