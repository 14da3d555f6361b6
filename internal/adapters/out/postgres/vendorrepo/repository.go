package vendorrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/vendor"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// orderedByPosition preloads courier pool rows in insertion order.
func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor with its courier pool. A duplicate vendor id
// fails with an ObjectAlreadyExistsError.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("vendorId", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vendor. The courier pool rows are replaced
// wholesale; pool membership only ever grows, so the replace is safe
// against concurrent reads.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&VendorDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"latitude":         dto.Address.Latitude,
			"longitude":        dto.Address.Longitude,
			"delivery_zone_km": dto.DeliveryZoneKm,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendorId", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", dto.ID).
		Delete(&VendorCourierDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Couriers) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Couriers).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vendor with its courier pool.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	err := r.db.WithContext(ctx).Preload("Couriers", orderedByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendorId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every vendor with its courier pool, sorted ascending
// by id.
func (r *GormVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	err := r.db.WithContext(ctx).Preload("Couriers", orderedByPosition).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	vendors := make([]*vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}
