package ports

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no product with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
