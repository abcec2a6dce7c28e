package order

import (
	"errors"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// deliveryCommissionRate is the fraction of the order subtotal owed to the
// platform by the intermediary for a delivery leg.
const deliveryCommissionRate = 0.10

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one buyer-to-vendor purchase in the marketplace. It is the
// aggregate root that manages the order lifecycle from checkout through vendor
// fulfillment and, for orders with home delivery, the delivery leg handled by
// an intermediary.
//
// An order carries two status axes:
//   - Status: the fulfillment axis driven by the vendor and the buyer
//   - DeliveryStatus: the delivery axis driven by the intermediary, present
//     only when the buyer asked for home delivery
//
// Order follows these invariants:
//   - Must have a valid unique identifier, buyer, and vendor
//   - Must have at least one line item
//   - Subtotal always equals the sum of line item totals
//   - The delivery axis exists if and only if home delivery was requested
//   - An intermediary can be set only on an order with a delivery axis
//   - The delivery commission is 10% of the subtotal for delivery orders
//     and zero otherwise
//   - Status transitions follow defined business rules
//   - Can only be created through NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID is the purchasing user's ID
	buyerID kernel.UUID

	// vendorID is the selling user's ID; all line items belong to this vendor
	vendorID kernel.UUID

	// items are the purchased product positions (snapshots taken at checkout)
	items []LineItem

	// deliveryAddress is the destination snapshot taken at checkout
	deliveryAddress kernel.Address

	// paymentMethod is how the buyer chose to pay
	paymentMethod PaymentMethod

	// deliveryCommission is the platform fee owed by the intermediary
	// (zero when the order has no delivery leg)
	deliveryCommission kernel.Money

	// commissionSettled records whether the delivery commission was collected
	commissionSettled bool

	// status is the current state on the fulfillment axis
	status Status

	// deliveryStatus is the current state on the delivery axis
	// (nil when the order has no delivery leg)
	deliveryStatus *DeliveryStatus

	// intermediaryID is the assigned intermediary's ID (nil if unassigned)
	intermediaryID *kernel.UUID

	// createdAt is when the order was placed
	createdAt time.Time

	// deliveredAt is when the goods reached the buyer (nil until then)
	deliveredAt *time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - buyerID: The purchasing user's ID (must be valid UUID)
//   - vendorID: The selling user's ID (must be valid UUID)
//   - items: At least one line item, all belonging to the vendor
//   - deliveryAddress: Destination snapshot taken at checkout
//   - paymentMethod: How the buyer pays
//   - wantsDelivery: Whether the buyer asked for home delivery
//   - now: Checkout timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and creates the order in Pending
// fulfillment status. When wantsDelivery is true the delivery axis starts in
// Pending and the delivery commission is computed as 10% of the subtotal,
// rounded to 2 decimal places half away from zero. Otherwise the order has no
// delivery axis and a zero commission.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	vendorID kernel.UUID,
	items []LineItem,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	wantsDelivery bool,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setVendorID(vendorID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if wantsDelivery {
		deliveryStatus := DeliveryPending
		order.deliveryStatus = &deliveryStatus
		order.deliveryCommission = order.Subtotal().Percent(deliveryCommissionRate)
	} else {
		order.deliveryCommission = kernel.ZeroMoney()
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state without running the
// checkout-time business rules. It is intended for repository implementations
// that rehydrate aggregates from the database.
//
// The stored delivery commission is taken as-is rather than recomputed, so the
// amount the intermediary agreed to at checkout survives any later change to
// the commission policy.
//
// Returns an error when the persisted state violates the aggregate's
// invariants, for example an intermediary on an order without a delivery axis.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	vendorID kernel.UUID,
	items []LineItem,
	deliveryAddress kernel.Address,
	paymentMethod PaymentMethod,
	deliveryCommission kernel.Money,
	commissionSettled bool,
	status Status,
	deliveryStatus *DeliveryStatus,
	intermediaryID *kernel.UUID,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		commissionSettled: commissionSettled,
		createdAt:         createdAt,
		deliveredAt:       deliveredAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setVendorID(vendorID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setPaymentMethod(paymentMethod),
		order.setDeliveryCommission(deliveryCommission),
		order.setStatus(status),
		order.setDeliveryStatus(deliveryStatus),
		order.setIntermediaryID(intermediaryID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Buyer returns the purchasing user's ID.
func (o *Order) Buyer() kernel.UUID {
	return o.buyerID
}

// Vendor returns the selling user's ID.
func (o *Order) Vendor() kernel.UUID {
	return o.vendorID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the destination snapshot taken at checkout.
func (o *Order) DeliveryAddress() kernel.Address {
	return o.deliveryAddress
}

// PaymentMethod returns how the buyer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Subtotal returns the sum of all line item totals.
func (o *Order) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range o.items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// DeliveryCommission returns the platform fee owed by the intermediary.
// The commission is zero for orders without a delivery leg.
func (o *Order) DeliveryCommission() kernel.Money {
	return o.deliveryCommission
}

// IsCommissionSettled reports whether the delivery commission was collected.
func (o *Order) IsCommissionSettled() bool {
	return o.commissionSettled
}

// Status returns the current state on the fulfillment axis.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryStatus returns the current state on the delivery axis.
// Returns nil when the order has no delivery leg.
func (o *Order) DeliveryStatus() *DeliveryStatus {
	return o.deliveryStatus
}

// WantsDelivery reports whether the buyer asked for home delivery.
func (o *Order) WantsDelivery() bool {
	return o.deliveryStatus != nil
}

// Intermediary returns the assigned intermediary's ID.
// Returns nil if no intermediary is assigned.
func (o *Order) Intermediary() *kernel.UUID {
	return o.intermediaryID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns when the goods reached the buyer.
// Returns nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Accept records the vendor's commitment to fulfill the order.
//
// Business rules:
//   - Only the order's vendor may accept it
//   - The order must be in Pending fulfillment status
//
// Returns:
//   - nil on success
//   - UnauthorizedError if the actor is not the vendor
//   - IllegalTransitionError if the order is not Pending
func (o *Order) Accept(actorID kernel.UUID) error {
	if !actorID.IsEqual(o.vendorID) {
		return errs.NewUnauthorizedError("accept order", actorID.String())
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartTransit records that the goods left the vendor.
//
// Business rules:
//   - Only the order's vendor may start transit
//   - The order must be in Accepted fulfillment status
//
// Returns:
//   - nil on success
//   - UnauthorizedError if the actor is not the vendor
//   - IllegalTransitionError if the order is not Accepted
func (o *Order) StartTransit(actorID kernel.UUID) error {
	if !actorID.IsEqual(o.vendorID) {
		return errs.NewUnauthorizedError("start transit", actorID.String())
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel calls the order off before the goods start moving.
//
// Business rules:
//   - Only the order's vendor may cancel it
//   - The order must be in Pending or Accepted fulfillment status
//
// Returns:
//   - nil on success
//   - UnauthorizedError if the actor is not the vendor
//   - IllegalTransitionError if the order already left Pending/Accepted
func (o *Order) Cancel(actorID kernel.UUID) error {
	if !actorID.IsEqual(o.vendorID) {
		return errs.NewUnauthorizedError("cancel order", actorID.String())
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmReceipt records that the buyer received the goods.
//
// Business rules:
//   - Only the order's buyer may confirm receipt
//   - For orders without a delivery leg the order must be InTransit
//   - For orders with a delivery leg the delivery must be InProgress;
//     confirming closes both axes at once
//   - Confirming an already delivered order succeeds without changing anything
//
// Parameters:
//   - actorID: The confirming user's ID
//   - now: Delivery timestamp to record
//
// Returns:
//   - nil on success
//   - UnauthorizedError if the actor is not the buyer
//   - IllegalTransitionError if the order is not ready to be confirmed
func (o *Order) ConfirmReceipt(actorID kernel.UUID, now time.Time) error {
	if !actorID.IsEqual(o.buyerID) {
		return errs.NewUnauthorizedError("confirm receipt", actorID.String())
	}

	if o.status == StatusDelivered {
		return nil
	}

	if o.deliveryStatus == nil {
		newStatus, err := o.status.Deliver()
		if err != nil {
			return err
		}

		o.status = newStatus
		o.deliveredAt = &now
		return nil
	}

	newDeliveryStatus, err := o.deliveryStatus.Complete()
	if err != nil {
		return err
	}

	o.status = StatusDelivered
	o.deliveryStatus = &newDeliveryStatus
	o.deliveredAt = &now
	return nil
}

// AcceptDelivery assigns an intermediary to the order's delivery leg.
//
// Business rules:
//   - The order must have a delivery leg
//   - The delivery must still be Pending (unclaimed)
//   - The order must not already have an intermediary
//
// The repository enforces the same rule atomically against concurrent
// claimers; this method keeps the in-memory aggregate consistent.
//
// Returns:
//   - nil on successful assignment
//   - IllegalTransitionError if the delivery is not Pending
//   - ConflictError if another intermediary already claimed the delivery
func (o *Order) AcceptDelivery(intermediaryID kernel.UUID) error {
	if err := intermediaryID.Validate(); err != nil {
		return err
	}

	if o.deliveryStatus == nil {
		return errs.NewIllegalTransitionError(
			"deliveryStatus", "none", DeliveryAccepted.String())
	}

	if o.intermediaryID != nil {
		return errs.NewConflictError("order", o.id.String())
	}

	newDeliveryStatus, err := o.deliveryStatus.Accept()
	if err != nil {
		return err
	}

	o.deliveryStatus = &newDeliveryStatus
	o.intermediaryID = &intermediaryID
	return nil
}

// StartDelivery records that the intermediary picked up the goods.
//
// Business rules:
//   - The delivery must be in Accepted status; an unclaimed (still Pending)
//     delivery fails the state check, not the authority check
//   - Only the assigned intermediary may start the delivery
//
// Returns:
//   - nil on success
//   - IllegalTransitionError if the delivery is not Accepted
//   - UnauthorizedError if the actor is not the assigned intermediary
func (o *Order) StartDelivery(actorID kernel.UUID) error {
	if o.deliveryStatus == nil {
		return errs.NewIllegalTransitionError(
			"deliveryStatus", "none", DeliveryInProgress.String())
	}

	newDeliveryStatus, err := o.deliveryStatus.Start()
	if err != nil {
		return err
	}

	if o.intermediaryID == nil || !actorID.IsEqual(*o.intermediaryID) {
		return errs.NewUnauthorizedError("start delivery", actorID.String())
	}

	o.deliveryStatus = &newDeliveryStatus
	return nil
}

// CompleteDelivery records that the intermediary handed the goods to the buyer.
//
// Business rules:
//   - Only the assigned intermediary may complete the delivery
//   - The delivery must be in InProgress status
//   - Completing the delivery closes the fulfillment axis as well: the order
//     becomes Delivered even if the vendor never advanced it past Accepted
//
// Parameters:
//   - actorID: The completing intermediary's ID
//   - now: Delivery timestamp to record
//
// Returns:
//   - nil on success
//   - UnauthorizedError if the actor is not the assigned intermediary
//   - IllegalTransitionError if the delivery is not InProgress
func (o *Order) CompleteDelivery(actorID kernel.UUID, now time.Time) error {
	if o.intermediaryID == nil || !actorID.IsEqual(*o.intermediaryID) {
		return errs.NewUnauthorizedError("complete delivery", actorID.String())
	}

	newDeliveryStatus, err := o.deliveryStatus.Complete()
	if err != nil {
		return err
	}

	o.status = StatusDelivered
	o.deliveryStatus = &newDeliveryStatus
	o.deliveredAt = &now
	return nil
}

// SettleCommission marks the delivery commission as collected.
//
// Business rules:
//   - The order must be Delivered
//   - The commission must not already be settled
//
// Returns:
//   - nil on success
//   - IllegalTransitionError if the order is not Delivered
//   - ConflictError if the commission was already settled
func (o *Order) SettleCommission() error {
	if o.status != StatusDelivered {
		return errs.NewIllegalTransitionError("status", o.status.String(), "commission_settled")
	}

	if o.commissionSettled {
		return errs.NewConflictError("order", o.id.String())
	}

	o.commissionSettled = true
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setBuyerID validates and sets the purchasing user's ID.
// This is a private method used only during construction.
func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

// setVendorID validates and sets the selling user's ID.
// This is a private method used only during construction.
func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

// setItems validates and sets the order's line items.
// The order must have at least one item and every item must be valid.
// This is a private method used only during construction.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

// setDeliveryAddress validates and sets the destination snapshot.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress kernel.Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setDeliveryCommission validates and sets the stored commission.
// This is a private method used only during restoration.
func (o *Order) setDeliveryCommission(deliveryCommission kernel.Money) error {
	if err := deliveryCommission.Validate(); err != nil {
		return err
	}
	o.deliveryCommission = deliveryCommission
	return nil
}

// setStatus validates and sets the fulfillment status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setDeliveryStatus validates and sets the delivery status.
// This is a private method used only during restoration.
func (o *Order) setDeliveryStatus(deliveryStatus *DeliveryStatus) error {
	if deliveryStatus == nil {
		return nil
	}
	if err := deliveryStatus.Validate(); err != nil {
		return err
	}
	o.deliveryStatus = deliveryStatus
	return nil
}

// setIntermediaryID validates and sets the assigned intermediary.
// An intermediary is only allowed on an order whose delivery leg exists and
// was claimed. This is a private method used only during restoration.
func (o *Order) setIntermediaryID(intermediaryID *kernel.UUID) error {
	if intermediaryID == nil {
		if o.deliveryStatus != nil && *o.deliveryStatus != DeliveryPending {
			return errs.NewValueIsRequiredError("intermediaryId")
		}
		return nil
	}

	if err := intermediaryID.Validate(); err != nil {
		return err
	}

	if o.deliveryStatus == nil || *o.deliveryStatus == DeliveryPending {
		return errs.NewValueIsInvalidError("intermediaryId")
	}

	o.intermediaryID = intermediaryID
	return nil
}
