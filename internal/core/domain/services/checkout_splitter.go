package services

import (
	"errors"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
)

// ErrEmptyCart is returned when checkout is attempted with no cart entries.
var ErrEmptyCart = errors.New("cart is empty")

// CartEntry is one position in the buyer's cart: a catalog product and the
// number of units the buyer wants.
type CartEntry struct {
	Product  *product.Product
	Quantity int
}

// CheckoutSplitter is a domain service that turns a mixed-vendor cart into
// per-vendor orders at checkout.
//
// Key responsibilities:
//   - Validating cart entries before splitting
//   - Grouping cart entries by owning vendor
//   - Snapshotting product names and prices into order line items
//
// Business rules:
//   - A cart spanning N vendors produces exactly N orders
//   - Each order contains only that vendor's items, in cart order
//   - Vendor groups keep the order in which vendors first appear in the cart
//   - All orders of one checkout share the same timestamp, destination,
//     payment method, and delivery choice
type CheckoutSplitter struct{}

// NewCheckoutSplitter creates a new CheckoutSplitter instance.
//
// Returns:
//   - CheckoutSplitter: A new instance ready for checkout operations
func NewCheckoutSplitter() CheckoutSplitter {
	return CheckoutSplitter{}
}

// Split builds one order per vendor from the buyer's cart.
//
// Parameters:
//   - buyerID: The purchasing user's ID
//   - cart: Cart entries in the order the buyer added them
//   - deliveryAddress: Destination snapshot for every produced order
//   - paymentMethod: How the buyer pays, shared by every produced order
//   - wantsDelivery: Whether the buyer asked for home delivery
//   - now: Checkout timestamp shared by every produced order
//
// Returns:
//   - []*order.Order: One pending order per vendor, in first-seen vendor order
//   - error: ErrEmptyCart for an empty cart, or validation errors from
//     cart entries and order construction
func (s CheckoutSplitter) Split(
	buyerID kernel.UUID,
	cart []CartEntry,
	deliveryAddress kernel.Address,
	paymentMethod order.PaymentMethod,
	wantsDelivery bool,
	now time.Time,
) ([]*order.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	vendorItems, vendorIDs, err := s.groupByVendor(cart)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		vendorOrder, err := order.NewOrder(
			kernel.NewUUID(),
			buyerID,
			vendorID,
			vendorItems[vendorID],
			deliveryAddress,
			paymentMethod,
			wantsDelivery,
			now,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, vendorOrder)
	}

	return orders, nil
}

// groupByVendor collects cart entries into per-vendor line item slices,
// preserving cart order inside each group and the order in which vendors
// first appear across groups.
func (s CheckoutSplitter) groupByVendor(
	cart []CartEntry,
) (map[kernel.UUID][]order.LineItem, []kernel.UUID, error) {
	vendorItems := make(map[kernel.UUID][]order.LineItem)
	vendorIDs := make([]kernel.UUID, 0, len(cart))

	for _, entry := range cart {
		if err := entry.Product.Validate(); err != nil {
			return nil, nil, err
		}

		item, err := order.NewLineItem(
			entry.Product.ID(),
			entry.Product.Name(),
			entry.Product.Price(),
			entry.Quantity,
		)
		if err != nil {
			return nil, nil, err
		}

		vendorID := entry.Product.Vendor()
		if _, seen := vendorItems[vendorID]; !seen {
			vendorIDs = append(vendorIDs, vendorID)
		}
		vendorItems[vendorID] = append(vendorItems[vendorID], item)
	}

	return vendorItems, vendorIDs, nil
}
