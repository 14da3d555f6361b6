// Package ports defines the contracts between the core and its
// collaborators: repository interfaces over the aggregate store, the unit
// of work, and the outbound clients for the remote users and orders
// services. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates, each owning exactly one order. Deliveries are keyed by their
// order id in every lookup path.
type DeliveryRepository interface {
	// Add persists a new delivery together with its order. Fails with an
	// ObjectAlreadyExistsError when the order id is already taken.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery and its order. The
	// write is guarded by the aggregate's version: a stale version fails
	// with a VersionConflictError and changes nothing.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery owning the given order.
	// Fails with an ObjectNotFoundError when no such delivery exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllAwaitingCourier retrieves all deliveries with no courier whose
	// order status is ACCEPTED, sorted ascending by order id. The sort
	// makes the assign-any pick deterministic.
	GetAllAwaitingCourier(ctx context.Context) ([]*delivery.Delivery, error)
}
