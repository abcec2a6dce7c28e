package product

import (
	"errors"
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog listing owned by a vendor.
// It is an aggregate root that manages the listing's identity, price,
// and stock level.
//
// Business rules:
//   - Product must have a valid UUID, a valid vendor, a non-empty name,
//     a valid price, and a non-negative stock level
//   - The owning vendor is fixed at creation
//   - Orders snapshot the name and price at checkout, so editing a product
//     never changes already placed orders
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// vendorID is the owning vendor's ID
	vendorID kernel.UUID
	// name is the listing title shown to buyers
	name string
	// description is the optional listing text
	description string
	// price is the current per-unit price
	price kernel.Money
	// category is the optional catalog category
	category string
	// stock is the number of units available for sale
	stock int
	// images are URLs of the listing photos
	images []string
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the specified parameters.
// This is the only way to create a valid Product instance.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - vendorID: The owning vendor's ID (must be valid UUID)
//   - name: Listing title (must be non-empty)
//   - description: Optional listing text
//   - price: Per-unit price (must be a valid Money)
//   - category: Optional catalog category
//   - stock: Units available for sale (must not be negative)
//   - images: Optional photo URLs
//
// Returns:
//   - *Product: A fully initialized product
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	stock int,
	images []string,
) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setVendorID(vendorID),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
	); err != nil {
		return nil, err
	}

	product.description = description
	product.category = category
	product.setImages(images)
	return product, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
// The restored product behaves identically to one created through NewProduct.
func RestoreProduct(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	stock int,
	images []string,
) (*Product, error) {
	return NewProduct(id, vendorID, name, description, price, category, stock, images)
}

// Validate checks if the Product was properly constructed using the NewProduct constructor.
// The zero value of Product is invalid and will fail this validation.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products for equality based on their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// ID returns the unique identifier of the product.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Vendor returns the owning vendor's ID.
func (p *Product) Vendor() kernel.UUID {
	return p.vendorID
}

// Name returns the listing title.
func (p *Product) Name() string {
	return p.name
}

// Description returns the listing text, or an empty string if unset.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current per-unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Category returns the catalog category, or an empty string if unset.
func (p *Product) Category() string {
	return p.category
}

// Stock returns the number of units available for sale.
func (p *Product) Stock() int {
	return p.stock
}

// Images returns a copy of the listing photo URLs.
func (p *Product) Images() []string {
	images := make([]string, len(p.images))
	copy(images, p.images)
	return images
}

// Update changes the product's listing data.
// The owning vendor is fixed at creation and cannot be changed.
//
// Returns:
//   - nil on success
//   - error if the new name, price, or stock is invalid
func (p *Product) Update(
	name string,
	description string,
	price kernel.Money,
	category string,
	stock int,
	images []string,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return err
	}

	p.description = description
	p.category = category
	p.setImages(images)
	return nil
}

// setID sets the product's unique identifier with validation.
// This is an internal setter used during product construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setVendorID sets the owning vendor's ID with validation.
// This is an internal setter used during product construction.
func (p *Product) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	p.vendorID = vendorID
	return nil
}

// setName sets the listing title with validation.
func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

// setPrice sets the per-unit price with validation.
func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.price = price
	return nil
}

// setStock sets the available stock with validation.
func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	p.stock = stock
	return nil
}

// setImages copies the photo URLs into the aggregate.
func (p *Product) setImages(images []string) {
	p.images = make([]string, len(images))
	copy(p.images, images)
}
