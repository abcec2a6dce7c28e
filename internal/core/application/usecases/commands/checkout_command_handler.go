package commands

import (
	"context"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/services"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// CheckoutCommandHandler handles the business logic for cart checkout.
// It splits the cart into one order per vendor, snapshots product names and
// prices, and persists everything in a single transaction. Stock is not
// reserved or decremented here; inventory is the vendor's to maintain.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory)
//	orderIDs, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// One order per vendor was created in pending status
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	splitter   services.CheckoutSplitter
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a UoWFactory spanning order, user, and product repositories.
func NewCheckoutCommandHandler(uowFactory UoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		splitter:   services.NewCheckoutSplitter(),
	}
}

// Handle processes the checkout command.
// Verifies the buyer, loads the products, splits the cart by vendor, and
// persists the produced orders atomically. All orders of one checkout share
// the same timestamp, destination, payment method, and delivery choice.
//
// Returns:
//   - []kernel.UUID: IDs of the created orders, one per vendor
//   - error: validation, authorization, or persistence error
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	deliveryAddress, err := kernel.NewAddress(cmd.Street(), cmd.City(), cmd.PostalCode())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.UserRepository().Get(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}
	if buyer.Role() != user.RoleBuyer {
		return nil, errs.NewUnauthorizedError("checkout", cmd.BuyerID().String())
	}

	productRepo := uow.ProductRepository()
	cart := make([]services.CartEntry, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		cartProduct, err := productRepo.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		cart = append(cart, services.CartEntry{Product: cartProduct, Quantity: item.Quantity})
	}

	orders, err := h.splitter.Split(
		cmd.BuyerID(),
		cart,
		deliveryAddress,
		cmd.PaymentMethod(),
		cmd.WantsDelivery(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, vendorOrder := range orders {
		if err = orderRepo.Add(ctx, vendorOrder); err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, vendorOrder.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}
