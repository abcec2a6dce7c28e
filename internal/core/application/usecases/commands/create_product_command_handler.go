package commands

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// CreateProductCommandHandler handles publishing of new product listings.
// Only accounts with the vendor role may publish.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product publishing.
// Requires a CatalogUoWFactory for user lookups and product persistence.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create-product command.
//
// Returns:
//   - kernel.UUID: the ID of the created listing
//   - error: UnauthorizedError when the actor is not a vendor, or a
//     validation or persistence error
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendor, err := uow.UserRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if vendor.Role() != user.RoleVendor {
		return kernel.UUID{}, errs.NewUnauthorizedError("create product", cmd.VendorID().String())
	}

	productID := kernel.NewUUID()
	listing, err := product.NewProduct(
		productID,
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.Stock(),
		cmd.Images(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ProductRepository().Add(ctx, listing); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return productID, nil
}
