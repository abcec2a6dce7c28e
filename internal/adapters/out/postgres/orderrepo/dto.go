// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Both status axes are stored as integers; the delivery axis columns are NULL
// for pickup orders. Indexed for the two hot lookups: the unclaimed delivery
// feed and per-party order history.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID            uuid.UUID  `gorm:"type:uuid;index"`
	VendorID           uuid.UUID  `gorm:"type:uuid;index"`
	IntermediaryID     *uuid.UUID `gorm:"type:uuid;index"`
	Address            AddressDTO `gorm:"embedded"`
	PaymentMethod      int
	DeliveryCommission float64
	CommissionSettled  bool
	Status             int `gorm:"index"`
	DeliveryStatus     *int
	CreatedAt          time.Time
	DeliveredAt        *time.Time
	Items              []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded destination address within the order table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// OrderItemDTO is one priced line of an order. Name and unit price are
// snapshots taken at checkout, so later catalog edits never change what was
// bought. The serial key preserves the cart's insertion order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	UnitPrice float64
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var intermediaryID *uuid.UUID
	if id := aggregate.Intermediary(); id != nil {
		raw := id.Bytes()
		intermediaryID = &raw
	}

	var deliveryStatus *int
	if ds := aggregate.DeliveryStatus(); ds != nil {
		raw := int(*ds)
		deliveryStatus = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		BuyerID:        aggregate.Buyer().Bytes(),
		VendorID:       aggregate.Vendor().Bytes(),
		IntermediaryID: intermediaryID,
		Address: AddressDTO{
			Street:     aggregate.DeliveryAddress().Street(),
			City:       aggregate.DeliveryAddress().City(),
			PostalCode: aggregate.DeliveryAddress().PostalCode(),
		},
		PaymentMethod:      int(aggregate.PaymentMethod()),
		DeliveryCommission: aggregate.DeliveryCommission().Amount(),
		CommissionSettled:  aggregate.IsCommissionSettled(),
		Status:             int(aggregate.Status()),
		DeliveryStatus:     deliveryStatus,
		CreatedAt:          aggregate.CreatedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		Items:              itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both status axes using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var intermediaryID *kernel.UUID
	if dto.IntermediaryID != nil {
		iID, intermediaryErr := kernel.UUIDFromBytes((*dto.IntermediaryID)[:])
		if intermediaryErr != nil {
			return nil, intermediaryErr
		}

		intermediaryID = &iID
	}

	var deliveryStatus *order.DeliveryStatus
	if dto.DeliveryStatus != nil {
		ds := order.DeliveryStatus(*dto.DeliveryStatus)
		deliveryStatus = &ds
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	commission, err := kernel.NewMoney(dto.DeliveryCommission)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(productID, itemDTO.Name, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		vendorID,
		items,
		address,
		order.PaymentMethod(dto.PaymentMethod),
		commission,
		dto.CommissionSettled,
		order.Status(dto.Status),
		deliveryStatus,
		intermediaryID,
		dto.CreatedAt,
		dto.DeliveredAt,
	)
}
