package services

import (
	"errors"
	"sort"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/vendor"
)

// ErrCourierUnbound is returned when no vendor's courier pool claims the
// courier. An unbound courier is not an error condition for availability
// filtering - it means the courier may take any non-self-fulfilling
// vendor's orders - but direct affinity lookups surface it to the caller.
var ErrCourierUnbound = errors.New("courier is not bound to any vendor")

// CourierAffinityResolver determines which vendor, if any, exclusively owns
// a courier, and which vendors manage their own courier pools.
//
// Example:
//
//	resolver := services.NewCourierAffinityResolver()
//	vendorID, err := resolver.VendorForCourier(courierID, vendors)
//	if errors.Is(err, services.ErrCourierUnbound) {
//	    // courier is free-floating
//	}
type CourierAffinityResolver struct{}

// NewCourierAffinityResolver creates a new CourierAffinityResolver.
func NewCourierAffinityResolver() CourierAffinityResolver {
	return CourierAffinityResolver{}
}

// VendorForCourier scans the vendors' courier pools and returns the id of
// the first vendor claiming the courier, in the given scan order.
//
// Returns:
//   - the owning vendor's id on the first match
//   - ErrCourierUnbound when no pool contains the courier
func (r CourierAffinityResolver) VendorForCourier(courierID kernel.UUID, vendors []*vendor.Vendor) (kernel.UUID, error) {
	if err := courierID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	for _, v := range vendors {
		if err := v.Validate(); err != nil {
			return kernel.UUID{}, err
		}

		if v.HasCourier(courierID) {
			return v.ID(), nil
		}
	}

	return kernel.UUID{}, ErrCourierUnbound
}

// VendorsWithOwnCouriers returns the ids of all self-fulfilling vendors,
// sorted ascending for deterministic output.
func (r CourierAffinityResolver) VendorsWithOwnCouriers(vendors []*vendor.Vendor) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(vendors))
	for _, v := range vendors {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if v.IsSelfFulfilling() {
			ids = append(ids, v.ID())
		}
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	return ids, nil
}
