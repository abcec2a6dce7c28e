package commands

import (
	"errors"
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrCartIsRequired = errors.New("cart must contain at least one item")
)

// CheckoutItem is one cart position in a checkout request: which product
// and how many units.
type CheckoutItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CheckoutCommand represents a buyer's request to turn their cart into orders.
// The cart may span several vendors; checkout produces one order per vendor.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(
//	    buyerID,
//	    []CheckoutItem{{ProductID: productID, Quantity: 2}},
//	    "Rua das Flores, 123", "Luanda", "1000-001",
//	    order.PaymentMethodCard,
//	    true,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	orderIDs, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	buyerID       kernel.UUID
	items         []CheckoutItem
	street        string
	city          string
	postalCode    string
	paymentMethod order.PaymentMethod
	wantsDelivery bool

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the buyer's cart.
// Validates that the buyer ID is valid, the cart is non-empty with valid
// entries, the destination address is complete, and the payment method is known.
// Returns an error if any validation fails.
func NewCheckoutCommand(
	buyerID kernel.UUID,
	items []CheckoutItem,
	street string,
	city string,
	postalCode string,
	paymentMethod order.PaymentMethod,
	wantsDelivery bool,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		wantsDelivery: wantsDelivery,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setBuyerID(buyerID),
		checkoutCommand.setItems(items),
		checkoutCommand.setAddress(street, city, postalCode),
		checkoutCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// BuyerID returns the purchasing user's ID.
func (c CheckoutCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Items returns the cart positions in the order the buyer added them.
func (c CheckoutCommand) Items() []CheckoutItem {
	items := make([]CheckoutItem, len(c.items))
	copy(items, c.items)
	return items
}

// Street returns the destination street.
func (c CheckoutCommand) Street() string {
	return c.street
}

// City returns the destination city.
func (c CheckoutCommand) City() string {
	return c.city
}

// PostalCode returns the destination postal code.
func (c CheckoutCommand) PostalCode() string {
	return c.postalCode
}

// PaymentMethod returns how the buyer pays.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// WantsDelivery returns whether the buyer asked for home delivery.
func (c CheckoutCommand) WantsDelivery() bool {
	return c.wantsDelivery
}

func (c *CheckoutCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CheckoutCommand) setItems(items []CheckoutItem) error {
	if len(items) == 0 {
		return ErrCartIsRequired
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("item %d: %d is not greater than 0", i, item.Quantity))
		}
	}

	c.items = make([]CheckoutItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CheckoutCommand) setAddress(street, city, postalCode string) error {
	// NewAddress re-validates at handle time; checking here keeps address
	// problems in the command validation error like every other field.
	if _, err := kernel.NewAddress(street, city, postalCode); err != nil {
		return err
	}

	c.street = street
	c.city = city
	c.postalCode = postalCode
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
