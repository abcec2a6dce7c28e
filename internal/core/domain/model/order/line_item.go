package order

import (
	"errors"
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an improperly
// initialized LineItem. Line items must be created using NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem represents one product position inside an order.
// The product name and unit price are snapshots taken at checkout time, so
// later catalog edits never change what the buyer agreed to pay.
//
// LineItem is an immutable value object. The zero value is invalid and will
// fail validation - use the constructor to create instances.
type LineItem struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem creates a new LineItem with the specified fields.
//
// Parameters:
//   - productID: Identifier of the catalog product (must be a valid UUID)
//   - name: Product name snapshot (must be non-empty)
//   - unitPrice: Price per unit snapshot (must be a valid Money)
//   - quantity: Number of units (must be positive)
//
// Returns:
//   - LineItem: A valid line item instance
//   - error: Validation error listing every invalid field
func NewLineItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks if the LineItem is properly constructed.
// Returns ErrLineItemIsNotConstructed for zero-value instances.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the identifier of the catalog product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product name snapshot.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the per-unit price snapshot.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the number of units.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns the line total (unit price multiplied by quantity).
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.MulQuantity(li.quantity)
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
