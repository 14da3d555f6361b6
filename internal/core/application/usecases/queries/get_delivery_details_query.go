package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryDetailsQueryIsNotConstructed = errors.New(
	"GetDeliveryDetailsQuery must be created via NewGetDeliveryDetailsQuery constructor",
)

// GetDeliveryDetailsQuery retrieves the full delivery record of an order:
// status, courier binding, rating, issue, and the fulfillment timestamps.
type GetDeliveryDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryDetailsQuery creates a query for the delivery record of
// the given order.
func NewGetDeliveryDetailsQuery(orderID kernel.UUID) (GetDeliveryDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryDetailsQuery{}, err
	}

	return GetDeliveryDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetDeliveryDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetDeliveryDetailsQueryResponse is the full delivery read model.
// Optional fields are nil when unset.
type GetDeliveryDetailsQueryResponse struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	VendorID    kernel.UUID
	Destination kernel.Location
	Status      string
	CourierID   *kernel.UUID
	Rating      *int
	Issue       *string
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}
