package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/role"
)

// RoleLookupClient resolves a caller's role against the remote users
// service. Implementations return a MicroserviceCommunicationError when
// the remote lookup yields nothing parseable; an unrecognized but present
// role string resolves to role.RoleUnknown without error.
type RoleLookupClient interface {
	RoleOf(ctx context.Context, userID kernel.UUID) (role.Role, error)
}

// VendorLocationClient resolves a vendor's address against the remote
// location service. Implementations return a
// MicroserviceCommunicationError when the lookup yields nothing usable;
// vendor creation is blocked on that failure.
type VendorLocationClient interface {
	LocationOf(ctx context.Context, vendorID kernel.UUID) (kernel.Location, error)
}

// OrderStatusNotifier pushes status changes to the external order ledger.
// Pushes are best-effort: a failure never rolls back local state, the
// caller queues the notification for retry instead.
type OrderStatusNotifier interface {
	PushStatus(ctx context.Context, orderID, userID kernel.UUID, status order.Status) error
}
