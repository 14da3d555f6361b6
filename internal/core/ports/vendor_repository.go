package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates
// including their courier pools.
type VendorRepository interface {
	// Add persists a new vendor. Fails with an ObjectAlreadyExistsError
	// when the vendor id is already taken.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor (zone, courier pool).
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor by id. Fails with an ObjectNotFoundError
	// when absent.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetAll retrieves every vendor with its courier pool, sorted
	// ascending by id. Affinity resolution scans this roster.
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)
}
