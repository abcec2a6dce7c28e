package commands

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a vendor's request to change one of their
// listings. Only the owning vendor may update a product; the handler enforces
// this against the stored listing.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	actorID     kernel.UUID
	name        string
	description string
	price       kernel.Money
	category    string
	stock       int
	images      []string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product listing.
// Validates that the IDs, name, and price are valid and stock is not negative.
// Returns an error if any validation fails.
func NewUpdateProductCommand(
	productID kernel.UUID,
	actorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	stock int,
	images []string,
) (UpdateProductCommand, error) {
	updateCommand := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setProductID(productID),
		updateCommand.setActorID(actorID),
		updateCommand.setName(name),
		updateCommand.setPrice(price),
		updateCommand.setStock(stock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	updateCommand.description = description
	updateCommand.category = category
	updateCommand.images = images

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the ID of the listing being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// ActorID returns the ID of the user requesting the update.
func (c UpdateProductCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the new listing name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description, possibly empty.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the new category, possibly empty.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Stock returns the new stock level.
func (c UpdateProductCommand) Stock() int {
	return c.stock
}

// Images returns the new photo URLs, possibly empty.
func (c UpdateProductCommand) Images() []string {
	return c.images
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}

	c.stock = stock
	return nil
}
