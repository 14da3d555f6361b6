// Package vendorrepo provides data transfer objects and mapping functions
// for vendor persistence, including the vendor's courier pool.
package vendorrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor
// aggregates. The courier pool lives in a separate table joined by
// vendor id.
type VendorDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Address        LocationDTO `gorm:"embedded"`
	DeliveryZoneKm float64
	Couriers       []VendorCourierDTO `gorm:"foreignKey:VendorID"`
}

// TableName specifies the database table name for vendor rows.
func (VendorDTO) TableName() string {
	return "vendors"
}

// VendorCourierDTO represents one courier pool membership row. Position
// preserves the pool's insertion order across rehydration.
type VendorCourierDTO struct {
	VendorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int
}

// TableName specifies the database table name for courier pool rows.
func (VendorCourierDTO) TableName() string {
	return "vendor_couriers"
}

// LocationDTO represents the embedded vendor address coordinates.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a vendor aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	couriers := make([]VendorCourierDTO, 0, len(aggregate.Couriers()))
	for i, courierID := range aggregate.Couriers() {
		couriers = append(couriers, VendorCourierDTO{
			VendorID:  aggregate.ID().Bytes(),
			CourierID: courierID.Bytes(),
			Position:  i,
		})
	}

	return VendorDTO{
		ID: aggregate.ID().Bytes(),
		Address: LocationDTO{
			Latitude:  aggregate.Address().Latitude(),
			Longitude: aggregate.Address().Longitude(),
		},
		DeliveryZoneKm: aggregate.DeliveryZoneKm(),
		Couriers:       couriers,
	}
}

// toDomain converts database rows back to a vendor aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewLocation(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}

	couriers := make([]kernel.UUID, 0, len(dto.Couriers))
	for _, row := range dto.Couriers {
		courierID, courierErr := kernel.UUIDFromBytes(row.CourierID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		couriers = append(couriers, courierID)
	}

	return vendor.RestoreVendor(id, address, dto.DeliveryZoneKm, couriers)
}
