package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Line items are immutable snapshots and are never rewritten; the explicit
// column list writes every mutable field even when it holds a zero value.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Select("status", "delivery_status", "intermediary_id", "commission_settled", "delivered_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, line items included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassignedDeliveries retrieves every order whose delivery leg is
// pending and unclaimed, oldest first.
func (r *GormOrderRepository) GetAllUnassignedDeliveries(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where("delivery_status = ? AND intermediary_id IS NULL", int(order.DeliveryPending)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// ClaimDelivery atomically assigns the delivery leg to an intermediary.
// The guarded UPDATE writes only when the leg is still pending and unclaimed,
// so out of any number of concurrent claimants exactly one succeeds; the rest
// get ConflictError.
func (r *GormOrderRepository) ClaimDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	intermediaryID kernel.UUID,
) error {
	if err := errors.Join(orderID.Validate(), intermediaryID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET intermediary_id = ?, delivery_status = ?
		WHERE id = ? AND delivery_status = ? AND intermediary_id IS NULL
	`,
		intermediaryID.Bytes(),
		int(order.DeliveryAccepted),
		orderID.Bytes(),
		int(order.DeliveryPending),
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", orderID.String())
	}

	return nil
}

// GetAllWithUnsettledCommission retrieves delivered orders with a delivery
// leg whose commission has not been collected yet.
func (r *GormOrderRepository) GetAllWithUnsettledCommission(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Where("status = ? AND delivery_status IS NOT NULL AND commission_settled = ?",
			int(order.StatusDelivered), false).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
