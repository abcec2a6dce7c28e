package commands

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// UpdateProductCommandHandler handles changes to existing listings.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
// Requires a ProductUoWFactory for transactional persistence.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-product command.
// Rejects actors other than the listing's owning vendor with an
// UnauthorizedError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	listing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !listing.Vendor().IsEqual(cmd.ActorID()) {
		return errs.NewUnauthorizedError("update product", cmd.ActorID().String())
	}

	if err = listing.Update(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.Stock(),
		cmd.Images(),
	); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, listing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
