package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// GetPartyOrdersQueryHandler reads a party's order history from the database.
// The counterparty name is resolved with a join instead of loading user
// aggregates per row.
type GetPartyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartyOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetPartyOrdersQueryHandler(db *gorm.DB) GetPartyOrdersQueryHandler {
	return GetPartyOrdersQueryHandler{db: db}
}

// Handle executes the query for one party's orders, newest first.
func (h GetPartyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartyOrdersQuery,
) ([]GetPartyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partyColumn, counterpartyColumn, err := partyColumns(query.Role())
	if err != nil {
		return nil, err
	}

	orders := make([]GetPartyOrdersQueryResponse, 0)

	// partyColumn and counterpartyColumn come from a fixed role mapping,
	// never from user input.
	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			o.id,
			o.status,
			o.delivery_status,
			u.name,
			COALESCE(SUM(i.unit_price * i.quantity), 0),
			o.delivery_commission,
			o.created_at,
			o.delivered_at
		FROM orders o
		JOIN users u ON u.id = o.%s
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.%s = ?
		GROUP BY o.id, o.status, o.delivery_status, u.name, o.delivery_commission, o.created_at, o.delivered_at
		ORDER BY o.created_at DESC
	`, counterpartyColumn, partyColumn), query.PartyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status int
		var deliveryStatus sql.NullInt64
		var counterpartyName string
		var subtotal, commission float64
		var createdAt time.Time
		var deliveredAt sql.NullTime

		err = rows.Scan(
			&id,
			&status,
			&deliveryStatus,
			&counterpartyName,
			&subtotal,
			&commission,
			&createdAt,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		subtotalMoney, moneyErr := kernel.NewMoney(subtotal)
		if moneyErr != nil {
			return nil, moneyErr
		}

		commissionMoney, moneyErr := kernel.NewMoney(commission)
		if moneyErr != nil {
			return nil, moneyErr
		}

		response := GetPartyOrdersQueryResponse{
			OrderID:            orderID,
			Status:             order.Status(status),
			CounterpartyName:   counterpartyName,
			Subtotal:           subtotalMoney,
			DeliveryCommission: commissionMoney,
			CreatedAt:          createdAt,
		}
		if deliveryStatus.Valid {
			ds := order.DeliveryStatus(deliveryStatus.Int64)
			response.DeliveryStatus = &ds
		}
		if deliveredAt.Valid {
			response.DeliveredAt = &deliveredAt.Time
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// partyColumns maps a role to the order column the party ID matches and the
// user column the counterparty name is read from.
func partyColumns(role user.Role) (string, string, error) {
	switch role {
	case user.RoleBuyer:
		return "buyer_id", "vendor_id", nil
	case user.RoleVendor:
		return "vendor_id", "buyer_id", nil
	case user.RoleIntermediary:
		return "intermediary_id", "vendor_id", nil
	default:
		return "", "", errs.NewValueIsInvalidError("role")
	}
}
