package order

import (
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// Status represents the fulfillment lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is placed at checkout.
	// Orders in this status are waiting for the vendor to accept them.
	StatusPending

	// StatusAccepted indicates the vendor has accepted the order
	// and committed to fulfilling it.
	StatusAccepted

	// StatusInTransit indicates the goods have left the vendor
	// and are on their way to the buyer.
	StatusInTransit

	// StatusDelivered indicates the goods reached the buyer.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was called off before transit.
	// This is a final state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a persisted or user-supplied status name.
//
// Returns:
//   - The matching Status for "pending", "accepted", "in_transit",
//     "delivered", or "cancelled"
//   - An error for any other input
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, InTransit, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
//
// Returns:
//   - "pending", "accepted", "in_transit", "delivered", or "cancelled" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further fulfillment transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (vendor commits to the order)
//
// Returns:
//   - (StatusAccepted, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Accept() to enforce state transitions.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewIllegalTransitionError("status", s.String(), StatusAccepted.String())
	}

	return StatusAccepted, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - Accepted -> InTransit (goods leave the vendor)
//
// Returns:
//   - (StatusInTransit, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.StartTransit() to enforce state transitions.
func (s Status) StartTransit() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewIllegalTransitionError("status", s.String(), StatusInTransit.String())
	}

	return StatusInTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (buyer confirms receipt)
//
// Returns:
//   - (StatusDelivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewIllegalTransitionError("status", s.String(), StatusDelivered.String())
	}

	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled (called off before acceptance)
//   - Accepted -> Cancelled (called off before transit)
//
// Invalid transitions:
//   - InTransit -> Cancelled (goods already moving)
//   - Delivered, Cancelled -> Cancelled (terminal states)
//
// Returns:
//   - (StatusCancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusAccepted {
		return 0, errs.NewIllegalTransitionError("status", s.String(), StatusCancelled.String())
	}

	return StatusCancelled, nil
}
