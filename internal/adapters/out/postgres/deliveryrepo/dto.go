// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery aggregate, handling the conversion between the domain
// model and the relational representation.
package deliveryrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Each row holds the owned order inline: the delivery is keyed
// by the order id, so one table carries the whole aggregate. The version
// column backs the optimistic concurrency check on updates.
type DeliveryDTO struct {
	OrderID     uuid.UUID   `gorm:"type:uuid;primaryKey;column:order_id"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;index"`
	VendorID    uuid.UUID   `gorm:"type:uuid;index"`
	Destination LocationDTO `gorm:"embedded;embeddedPrefix:dest_"`
	Status      string      `gorm:"index"`
	CourierID   *uuid.UUID  `gorm:"type:uuid;index"`
	Rating      *int
	Issue       *string
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Version     int64
}

// TableName specifies the database table name for delivery rows.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LocationDTO represents the embedded destination coordinates within the
// deliveries table.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	o := aggregate.Order()

	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var rating *int
	if r := aggregate.Rating(); r != nil {
		value := r.Value()
		rating = &value
	}

	return DeliveryDTO{
		OrderID:    o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		VendorID:   o.VendorID().Bytes(),
		Destination: LocationDTO{
			Latitude:  o.Destination().Latitude(),
			Longitude: o.Destination().Longitude(),
		},
		Status:      o.Status().String(),
		CourierID:   courierID,
		Rating:      rating,
		Issue:       aggregate.Issue(),
		ReadyAt:     aggregate.ReadyAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database row back to a delivery aggregate, rebuilding
// the owned order first.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	o, err := order.RestoreOrder(orderID, customerID, vendorID, destination, status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		id, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &id
	}

	var rating *delivery.Rating
	if dto.Rating != nil {
		r, ratingErr := delivery.NewRating(*dto.Rating)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	return delivery.RestoreDelivery(
		orderID,
		o,
		courierID,
		rating,
		dto.Issue,
		dto.ReadyAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.Version,
	)
}
