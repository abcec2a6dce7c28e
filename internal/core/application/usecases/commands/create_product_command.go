package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a vendor's request to publish a new listing.
//
// Example:
//
//	price, _ := kernel.NewMoney(3.95)
//	cmd, err := NewCreateProductCommand(
//	    vendorID, "Tomates", "Tomates frescos da Huíla", price,
//	    "vegetables", 120, nil,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	productID, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	vendorID    kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	stock       int
	images      []string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to publish a product listing.
// Validates that the vendor ID, name, and price are valid and stock is not
// negative. Description, category, and images are optional.
// Returns an error if any validation fails.
func NewCreateProductCommand(
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	stock int,
	images []string,
) (CreateProductCommand, error) {
	createCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setVendorID(vendorID),
		createCommand.setName(name),
		createCommand.setPrice(price),
		createCommand.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	createCommand.description = description
	createCommand.category = category
	createCommand.images = images

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// VendorID returns the ID of the vendor publishing the listing.
func (c CreateProductCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the listing name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the listing description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the catalog category, possibly empty.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Stock returns the initial units available for sale.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// Images returns the photo URLs, possibly empty.
func (c CreateProductCommand) Images() []string {
	return c.images
}

func (c *CreateProductCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
