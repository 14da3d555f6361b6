package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryZoneQueryHandler reads a vendor's delivery zone radius from
// the vendors table.
type GetDeliveryZoneQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryZoneQueryHandler creates a handler for delivery zone
// queries.
func NewGetDeliveryZoneQueryHandler(db *gorm.DB) GetDeliveryZoneQueryHandler {
	return GetDeliveryZoneQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when the
// vendor id is unknown.
func (h GetDeliveryZoneQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryZoneQuery,
) (GetDeliveryZoneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryZoneQueryResponse{}, err
	}

	var zoneKm float64
	row := h.db.WithContext(ctx).Raw(`
		SELECT delivery_zone_km
		FROM vendors
		WHERE id = ?
	`, query.VendorID().String()).Row()

	if err := row.Scan(&zoneKm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryZoneQueryResponse{}, errs.NewObjectNotFoundError("vendorId", query.VendorID())
		}
		return GetDeliveryZoneQueryResponse{}, err
	}

	return GetDeliveryZoneQueryResponse{
		VendorID: query.VendorID(),
		ZoneKm:   zoneKm,
	}, nil
}
