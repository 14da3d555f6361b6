package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the orders a courier may take right
// now. Unlike the other queries this one runs the availability rules on
// the domain model: the vendor-exclusivity filtering is business logic,
// not a WHERE clause.
type GetAvailableOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the orders available to
// the given courier.
func NewGetAvailableOrdersQuery(courierID kernel.UUID) (GetAvailableOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return GetAvailableOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the asking courier.
func (q GetAvailableOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetAvailableOrdersQueryResponse carries one available order.
type GetAvailableOrdersQueryResponse struct {
	OrderID     kernel.UUID
	VendorID    kernel.UUID
	Destination kernel.Location
}
