package ports

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// on both the fulfillment and the delivery axis.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no order with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnassignedDeliveries retrieves every order with a pending,
	// unclaimed delivery leg. This is the feed intermediaries browse when
	// looking for work.
	GetAllUnassignedDeliveries(ctx context.Context) ([]*order.Order, error)

	// ClaimDelivery atomically assigns the delivery leg of the given order to
	// the given intermediary. The claim succeeds only if no intermediary holds
	// the leg at the moment of the write; a lost race returns ConflictError.
	// On success the stored delivery status moves to accepted.
	ClaimDelivery(ctx context.Context, orderID kernel.UUID, intermediaryID kernel.UUID) error

	// GetAllWithUnsettledCommission retrieves delivered orders whose delivery
	// commission has not been collected yet. Used by the commission
	// settlement job.
	GetAllWithUnsettledCommission(ctx context.Context) ([]*order.Order, error)
}
