// Package queries contains read-only operations for the marketplace.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers bypass the domain aggregates and read directly from the
// database for efficiency.
package queries

import (
	"errors"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var (
	ErrGetUnassignedDeliveriesQueryIsNotConstructed = errors.New(
		"GetUnassignedDeliveriesQuery must be created via NewGetUnassignedDeliveriesQuery constructor",
	)
)

// GetUnassignedDeliveriesQuery retrieves all orders whose delivery leg is
// still waiting for an intermediary. This is the feed intermediaries browse
// when looking for work.
//
// Example:
//
//	query := NewGetUnassignedDeliveriesQuery()
//	handler := NewGetUnassignedDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open deliveries: %w", err)
//	}
//
//	fmt.Printf("Found %d open deliveries\n", len(deliveries))
type GetUnassignedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedDeliveriesQuery creates a query to retrieve open deliveries.
// This is a parameterless query that fetches every unclaimed delivery leg.
func NewGetUnassignedDeliveriesQuery() GetUnassignedDeliveriesQuery {
	return GetUnassignedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedDeliveriesQueryIsNotConstructed if validation fails.
func (q GetUnassignedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedDeliveriesQueryIsNotConstructed)
}

// GetUnassignedDeliveriesQueryResponse is one open delivery in the feed.
// Carries what an intermediary needs to decide whether the job is worth
// taking: where the goods go, what the order is worth, and what the
// delivery pays.
type GetUnassignedDeliveriesQueryResponse struct {
	OrderID            kernel.UUID
	VendorName         string
	DeliveryAddress    kernel.Address
	Subtotal           kernel.Money
	DeliveryCommission kernel.Money
	CreatedAt          time.Time
}
