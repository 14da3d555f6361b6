// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read
// straight from the database into response models, no aggregates involved.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current lifecycle status of an order.
//
// Example:
//
//	query, err := queries.NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Status) // "ON_TRANSIT"
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the status of the given order.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusQueryResponse carries the order's status in wire form.
type GetOrderStatusQueryResponse struct {
	OrderID kernel.UUID
	Status  string
}
