package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/vendor"
)

// OrderAvailabilityService filters the deliveries a courier may take under
// the vendor-exclusivity rules:
//
//   - only deliveries with no courier whose order is exactly ACCEPTED
//     qualify at all;
//   - a courier bound to a vendor sees only that vendor's orders;
//   - an unbound courier sees only orders of vendors that are not
//     self-fulfilling, so self-fulfilling vendors' orders stay reserved
//     for their own pools.
//
// The service is pure: callers load the candidate deliveries and the
// vendor roster, the service decides.
type OrderAvailabilityService struct {
	affinity CourierAffinityResolver
}

// NewOrderAvailabilityService creates a new OrderAvailabilityService.
func NewOrderAvailabilityService() OrderAvailabilityService {
	return OrderAvailabilityService{
		affinity: NewCourierAffinityResolver(),
	}
}

// AvailableOrders returns the ids of the orders the courier may take,
// preserving the iteration order of the deliveries slice. Callers that
// need a deterministic pick rely on that order, so repositories feed
// deliveries sorted by order id.
func (s OrderAvailabilityService) AvailableOrders(
	courierID kernel.UUID,
	deliveries []*delivery.Delivery,
	vendors []*vendor.Vendor,
) ([]kernel.UUID, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*delivery.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if d.IsAwaitingCourier() {
			candidates = append(candidates, d)
		}
	}

	boundVendorID, err := s.affinity.VendorForCourier(courierID, vendors)
	switch {
	case err == nil:
		return s.retainVendorOrders(candidates, boundVendorID), nil
	case errors.Is(err, ErrCourierUnbound):
		return s.retainOpenOrders(candidates, vendors)
	default:
		return nil, err
	}
}

// retainVendorOrders keeps only the candidates belonging to the courier's
// own vendor.
func (s OrderAvailabilityService) retainVendorOrders(candidates []*delivery.Delivery, vendorID kernel.UUID) []kernel.UUID {
	orderIDs := make([]kernel.UUID, 0, len(candidates))
	for _, d := range candidates {
		if d.Order().VendorID().IsEqual(vendorID) {
			orderIDs = append(orderIDs, d.OrderID())
		}
	}
	return orderIDs
}

// retainOpenOrders keeps only the candidates whose vendor is not
// self-fulfilling.
func (s OrderAvailabilityService) retainOpenOrders(candidates []*delivery.Delivery, vendors []*vendor.Vendor) ([]kernel.UUID, error) {
	reservedIDs, err := s.affinity.VendorsWithOwnCouriers(vendors)
	if err != nil {
		return nil, err
	}

	reserved := make(map[kernel.UUID]bool, len(reservedIDs))
	for _, id := range reservedIDs {
		reserved[id] = true
	}

	orderIDs := make([]kernel.UUID, 0, len(candidates))
	for _, d := range candidates {
		if !reserved[d.Order().VendorID()] {
			orderIDs = append(orderIDs, d.OrderID())
		}
	}
	return orderIDs, nil
}
