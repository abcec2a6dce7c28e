// Package order provides domain entities and business logic for order management
// in the marketplace. It implements the Order aggregate root with lifecycle
// management and state transitions on two status axes.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine for the vendor-driven fulfillment axis
//   - DeliveryStatus: A state machine for the intermediary-driven delivery axis
//   - LineItem: A value object for purchased product positions (checkout snapshots)
//   - PaymentMethod: The buyer's payment choice recorded at checkout
//
// Key business rules:
//   - Orders must have a valid identifier, buyer, vendor, and at least one line item
//   - Fulfillment follows a defined workflow: pending -> accepted -> in_transit -> delivered,
//     with cancellation possible before transit
//   - The delivery axis exists only for orders placed with home delivery:
//     pending -> accepted -> in_progress -> delivered
//   - At most one intermediary may claim a delivery; completing the delivery leg
//     closes the fulfillment axis as well
//   - Delivery orders carry a 10% commission on the subtotal owed by the intermediary
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
