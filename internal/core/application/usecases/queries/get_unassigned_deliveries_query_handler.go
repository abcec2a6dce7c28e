package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
)

// GetUnassignedDeliveriesQueryHandler reads the open delivery feed from the
// database. The subtotal is aggregated from the order's line items in SQL so
// no aggregates need to be rehydrated.
type GetUnassignedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedDeliveriesQueryHandler creates a handler for the open
// delivery feed. Requires a GORM database connection for query execution.
func NewGetUnassignedDeliveriesQueryHandler(db *gorm.DB) GetUnassignedDeliveriesQueryHandler {
	return GetUnassignedDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all unclaimed delivery legs.
// Returns orders whose delivery is pending and has no intermediary, oldest
// first so long-waiting deliveries surface at the top of the feed.
func (h GetUnassignedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedDeliveriesQuery,
) ([]GetUnassignedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetUnassignedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			u.name,
			o.street,
			o.city,
			o.postal_code,
			COALESCE(SUM(i.unit_price * i.quantity), 0),
			o.delivery_commission,
			o.created_at
		FROM orders o
		JOIN users u ON u.id = o.vendor_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.delivery_status = ? AND o.intermediary_id IS NULL
		GROUP BY o.id, u.name, o.street, o.city, o.postal_code, o.delivery_commission, o.created_at
		ORDER BY o.created_at
	`, int(order.DeliveryPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var vendorName, street, city, postalCode string
		var subtotal, commission float64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&vendorName,
			&street,
			&city,
			&postalCode,
			&subtotal,
			&commission,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		address, addrErr := kernel.NewAddress(street, city, postalCode)
		if addrErr != nil {
			return nil, addrErr
		}

		subtotalMoney, moneyErr := kernel.NewMoney(subtotal)
		if moneyErr != nil {
			return nil, moneyErr
		}

		commissionMoney, moneyErr := kernel.NewMoney(commission)
		if moneyErr != nil {
			return nil, moneyErr
		}

		deliveries = append(deliveries, GetUnassignedDeliveriesQueryResponse{
			OrderID:            orderID,
			VendorName:         vendorName,
			DeliveryAddress:    address,
			Subtotal:           subtotalMoney,
			DeliveryCommission: commissionMoney,
			CreatedAt:          createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
