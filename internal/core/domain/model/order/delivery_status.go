package order

import (
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// DeliveryStatus represents the delivery leg lifecycle of an order.
// It is a second state machine that runs alongside the fulfillment Status
// and exists only for orders placed with home delivery.
//
// State transitions:
//
//	DeliveryPending ──> DeliveryAccepted ──> DeliveryInProgress ──> DeliveryDelivered
//
// DeliveryDelivered is a terminal state. Completing the delivery leg also
// completes the fulfillment axis (see Order.CompleteDelivery).
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	// This value (0) helps catch uninitialized DeliveryStatus values.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial delivery status at checkout.
	// The order is visible to intermediaries and waiting to be claimed.
	DeliveryPending

	// DeliveryAccepted indicates an intermediary has claimed the delivery.
	DeliveryAccepted

	// DeliveryInProgress indicates the intermediary picked up the goods
	// and is en route to the buyer.
	DeliveryInProgress

	// DeliveryDelivered indicates the goods were handed to the buyer.
	// This is a final state with no further transitions allowed.
	DeliveryDelivered
)

// getDeliveryStatusStrings returns a map of DeliveryStatus values to their
// string representations. All statuses are included for string conversion.
func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:    "unknown",
		DeliveryPending:    "pending",
		DeliveryAccepted:   "accepted",
		DeliveryInProgress: "in_progress",
		DeliveryDelivered:  "delivered",
	}
}

// getValidDeliveryStatusStrings returns a map of only valid DeliveryStatus values.
func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryPending:    "pending",
		DeliveryAccepted:   "accepted",
		DeliveryInProgress: "in_progress",
		DeliveryDelivered:  "delivered",
	}
}

// Validate checks if the DeliveryStatus value is valid.
//
// Valid statuses are: Pending, Accepted, InProgress, Delivered.
// DeliveryUnknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the persisted name of the delivery status.
// This method implements the fmt.Stringer interface and is safe
// to call on any DeliveryStatus value, including invalid ones.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the delivery status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (intermediary claims the delivery)
//
// Returns:
//   - (DeliveryAccepted, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s DeliveryStatus) Accept() (DeliveryStatus, error) {
	if s != DeliveryPending {
		return 0, errs.NewIllegalTransitionError("deliveryStatus", s.String(), DeliveryAccepted.String())
	}

	return DeliveryAccepted, nil
}

// Start transitions the delivery status to InProgress.
//
// Valid transitions:
//   - Accepted -> InProgress (intermediary picks up the goods)
//
// Returns:
//   - (DeliveryInProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s DeliveryStatus) Start() (DeliveryStatus, error) {
	if s != DeliveryAccepted {
		return 0, errs.NewIllegalTransitionError("deliveryStatus", s.String(), DeliveryInProgress.String())
	}

	return DeliveryInProgress, nil
}

// Complete transitions the delivery status to Delivered.
//
// Valid transitions:
//   - InProgress -> Delivered (goods handed to the buyer)
//
// Returns:
//   - (DeliveryDelivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Delivered is a final state with no further transitions possible.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != DeliveryInProgress {
		return 0, errs.NewIllegalTransitionError("deliveryStatus", s.String(), DeliveryDelivered.String())
	}

	return DeliveryDelivered, nil
}
