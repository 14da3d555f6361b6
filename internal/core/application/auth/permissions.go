// Package auth implements the role-based permission rules gating every
// caller-facing operation. A caller's role is resolved through the remote
// users service on every call - no caching - and combined with the
// targeted order/delivery to a yes/no decision. Role-resolution failures
// propagate unchanged to the caller.
package auth

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/role"
	"fooddelivery/internal/core/ports"
)

// PermissionService evaluates the authorization predicates. All decisions
// reduce to the involvement predicate plus per-operation role rules.
//
// Example:
//
//	perms := auth.NewPermissionService(rolesClient, deliveryRepo)
//	allowed, err := perms.CanChangeOrderRating(ctx, callerID, orderID)
//	if err != nil {
//	    // users service unreachable, or order unknown
//	}
//	if !allowed {
//	    // forbidden
//	}
type PermissionService struct {
	roles      ports.RoleLookupClient
	deliveries ports.DeliveryRepository
}

// NewPermissionService creates a PermissionService resolving roles through
// the given client and involvement through the given repository.
func NewPermissionService(roles ports.RoleLookupClient, deliveries ports.DeliveryRepository) PermissionService {
	return PermissionService{
		roles:      roles,
		deliveries: deliveries,
	}
}

// IsInvolvedInOrder decides whether the user, acting in the given role, is
// a party to the order:
//
//   - admin: always involved
//   - customer: involved iff they placed the order
//   - vendor: involved iff the order belongs to them
//   - courier: involved iff the delivery has a courier and it is them
//   - anything else (including unknown roles): not involved
func (s PermissionService) IsInvolvedInOrder(ctx context.Context, userID kernel.UUID, callerRole role.Role, orderID kernel.UUID) (bool, error) {
	if callerRole == role.Admin {
		return true, nil
	}

	d, err := s.deliveries.GetByOrderID(ctx, orderID)
	if err != nil {
		return false, err
	}

	switch callerRole {
	case role.Customer:
		return userID.IsEqual(d.Order().CustomerID()), nil
	case role.Vendor:
		return userID.IsEqual(d.Order().VendorID()), nil
	case role.Courier:
		return d.CourierID() != nil && userID.IsEqual(*d.CourierID()), nil
	default:
		return false, nil
	}
}

// CanViewDeliveryDetails permits any caller involved in the order.
func (s PermissionService) CanViewDeliveryDetails(ctx context.Context, userID, orderID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	return s.IsInvolvedInOrder(ctx, userID, callerRole, orderID)
}

// CanUpdateDeliveryDetails permits involved callers except customers:
// customers may watch their delivery but not touch its record.
func (s PermissionService) CanUpdateDeliveryDetails(ctx context.Context, userID, orderID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	if callerRole == role.Customer {
		return false, nil
	}

	return s.IsInvolvedInOrder(ctx, userID, callerRole, orderID)
}

// CanViewCourierAnalytics permits admins, and couriers looking at their
// own numbers.
func (s PermissionService) CanViewCourierAnalytics(ctx context.Context, userID, courierID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	if callerRole == role.Admin {
		return true, nil
	}

	return callerRole == role.Courier && userID.IsEqual(courierID), nil
}

// CanCreateDelivery permits admins, and customers placing an order for
// themselves.
func (s PermissionService) CanCreateDelivery(ctx context.Context, userID, customerID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	if callerRole == role.Admin {
		return true, nil
	}

	return callerRole == role.Customer && userID.IsEqual(customerID), nil
}

// CanTakeAvailableOrders permits admins, and couriers pulling or browsing
// the queue for themselves.
func (s PermissionService) CanTakeAvailableOrders(ctx context.Context, userID, courierID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	if callerRole == role.Admin {
		return true, nil
	}

	return callerRole == role.Courier && userID.IsEqual(courierID), nil
}

// CanChangeOrderRating permits only the customer who placed the order.
// Admins deliberately cannot rate on a customer's behalf.
func (s PermissionService) CanChangeOrderRating(ctx context.Context, userID, orderID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	if callerRole != role.Customer {
		return false, nil
	}

	return s.IsInvolvedInOrder(ctx, userID, callerRole, orderID)
}

// CanUpdateVendorDeliveryZone permits admins and vendors. The vendor's
// own-courier requirement is enforced by the zone update itself, not here.
func (s PermissionService) CanUpdateVendorDeliveryZone(ctx context.Context, userID kernel.UUID) (bool, error) {
	callerRole, err := s.roles.RoleOf(ctx, userID)
	if err != nil {
		return false, err
	}

	return callerRole == role.Admin || callerRole == role.Vendor, nil
}
