package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryZoneQueryIsNotConstructed = errors.New(
	"GetDeliveryZoneQuery must be created via NewGetDeliveryZoneQuery constructor",
)

// GetDeliveryZoneQuery retrieves a vendor's delivery zone radius.
type GetDeliveryZoneQuery struct {
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryZoneQuery creates a query for the delivery zone of the
// given vendor.
func NewGetDeliveryZoneQuery(vendorID kernel.UUID) (GetDeliveryZoneQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetDeliveryZoneQuery{}, err
	}

	return GetDeliveryZoneQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryZoneQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryZoneQueryIsNotConstructed)
}

// VendorID returns the identifier of the queried vendor.
func (q GetDeliveryZoneQuery) VendorID() kernel.UUID {
	return q.vendorID
}

// GetDeliveryZoneQueryResponse carries a vendor's zone radius in
// kilometers.
type GetDeliveryZoneQueryResponse struct {
	VendorID kernel.UUID
	ZoneKm   float64
}
