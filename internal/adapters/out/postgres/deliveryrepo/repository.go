package deliveryrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database. A duplicate order id fails
// with an ObjectAlreadyExistsError.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderId", aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database. The write only lands
// when the stored version still matches the aggregate's; on success the
// stored version advances by one. A stale aggregate fails with a
// VersionConflictError.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("order_id = ? AND version = ?", dto.OrderID, aggregate.Version()).
		Select("*").Omit("order_id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
			Where("order_id = ?", dto.OrderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.OrderID().String())
		}
		return errs.NewVersionConflictError("delivery", aggregate.OrderID().String(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetByOrderID retrieves the delivery owning the given order.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAwaitingCourier retrieves all unassigned deliveries whose order is
// accepted, sorted ascending by order id so callers get a deterministic
// pick order.
func (r *GormDeliveryRepository) GetAllAwaitingCourier(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("courier_id IS NULL AND status = ?", order.Accepted.String()).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
