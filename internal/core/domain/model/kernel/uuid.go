package kernel

import (
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation and is the identity
// type of every aggregate in the marketplace: users, products, orders,
// and the intermediary assigned to a delivery.
//
// The zero value of UUID is invalid and must be constructed using one of the
// provided factory functions: NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Fresh identity for a new aggregate
//	orderID := kernel.NewUUID()
//
//	// Identity arriving from a request path or body
//	buyerID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to mint identifiers for new aggregates; the
// server never accepts client-supplied IDs for created resources.
//
// Example:
//
//	productID := kernel.NewUUID()
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the standard formats google/uuid understands, including the
// plain, braced, and urn:uuid forms.
//
// Returns an error if the string is not a valid UUID. This is the entry
// point for identifiers arriving over HTTP (path params, query params,
// request bodies).
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long, and the nil UUID is
// rejected. This is the entry point for identifiers read back from
// persistence, where the repositories store them as native uuid columns.
//
// Example:
//
//	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
// Used for JSON responses, error messages, and log fields.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value.
// The repositories use it directly as a gorm column value (uuid.UUID
// implements driver.Valuer); for a raw byte slice use id.Bytes()[:].
// Direct access outside the adapters should be rare.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value. This is how the
// order aggregate decides whether an actor is the buyer, the vendor,
// or the assigned intermediary.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// Called by every command setter and aggregate constructor that takes
// an identity, so an uninitialized UUID never reaches persistence.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
