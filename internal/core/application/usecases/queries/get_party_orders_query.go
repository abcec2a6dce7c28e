package queries

import (
	"errors"
	"time"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var (
	ErrGetPartyOrdersQueryIsNotConstructed = errors.New(
		"GetPartyOrdersQuery must be created via NewGetPartyOrdersQuery constructor",
	)
)

// GetPartyOrdersQuery retrieves the orders a party is involved in. The role
// decides which side of the order the party ID is matched against: buyers
// see their purchases, vendors their sales, intermediaries their deliveries.
//
// Example:
//
//	query, err := NewGetPartyOrdersQuery(buyerID, user.RoleBuyer)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewGetPartyOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetPartyOrdersQuery struct { //nolint:recvcheck //using for validation
	partyID kernel.UUID
	role    user.Role

	guard guard.ConstructorGuard
}

// NewGetPartyOrdersQuery creates a query for one party's order history.
// Validates that the party ID and role are valid.
// Returns an error if any validation fails.
func NewGetPartyOrdersQuery(partyID kernel.UUID, role user.Role) (GetPartyOrdersQuery, error) {
	partyQuery := GetPartyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partyQuery.setPartyID(partyID),
		partyQuery.setRole(role),
	); err != nil {
		return GetPartyOrdersQuery{}, err
	}

	return partyQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartyOrdersQueryIsNotConstructed if validation fails.
func (q GetPartyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartyOrdersQueryIsNotConstructed)
}

// PartyID returns the ID of the party whose orders are listed.
func (q GetPartyOrdersQuery) PartyID() kernel.UUID {
	return q.partyID
}

// Role returns which side of the order the party is on.
func (q GetPartyOrdersQuery) Role() user.Role {
	return q.role
}

func (q *GetPartyOrdersQuery) setPartyID(partyID kernel.UUID) error {
	if err := partyID.Validate(); err != nil {
		return err
	}

	q.partyID = partyID
	return nil
}

func (q *GetPartyOrdersQuery) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// GetPartyOrdersQueryResponse is one order in a party's history.
// CounterpartyName is the vendor for buyers and intermediaries, and the
// buyer for vendors. DeliveryStatus is nil for pickup orders.
type GetPartyOrdersQueryResponse struct {
	OrderID            kernel.UUID
	Status             order.Status
	DeliveryStatus     *order.DeliveryStatus
	CounterpartyName   string
	Subtotal           kernel.Money
	DeliveryCommission kernel.Money
	CreatedAt          time.Time
	DeliveredAt        *time.Time
}
