package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRatingQueryIsNotConstructed = errors.New(
	"GetRatingQuery must be created via NewGetRatingQuery constructor",
)

// GetRatingQuery retrieves the customer's rating for an order's delivery.
type GetRatingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRatingQuery creates a query for the rating of the given order.
func NewGetRatingQuery(orderID kernel.UUID) (GetRatingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRatingQuery{}, err
	}

	return GetRatingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRatingQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetRatingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetRatingQueryResponse carries the rating of a delivered order.
type GetRatingQueryResponse struct {
	OrderID kernel.UUID
	Rating  int
}
