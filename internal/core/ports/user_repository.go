// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and its email must not already be registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// The user must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no user with the given ID exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its login email.
	// Returns ObjectNotFoundError if no user with the given email exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
