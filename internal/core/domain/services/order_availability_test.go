package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/vendor"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryForVendor(t *testing.T, vendorID kernel.UUID, status order.Status) *delivery.Delivery {
	t.Helper()
	destination, err := kernel.NewLocation(52.37, 4.89)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), vendorID, destination, status)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), o)
	require.NoError(t, err)
	return d
}

func TestOrderAvailabilityService_AvailableOrders(t *testing.T) {
	svc := services.NewOrderAvailabilityService()

	t.Run("should reserve self-fulfilling vendors' orders for their couriers", func(t *testing.T) {
		// Vendor A has its own courier; vendor B has none.
		courierID := kernel.NewUUID()
		vendorA := newVendorWithCouriers(t, courierID)
		vendorB := newVendorWithCouriers(t)
		vendors := []*vendor.Vendor{vendorA, vendorB}

		o1 := newDeliveryForVendor(t, vendorA.ID(), order.Accepted)
		o2 := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)
		deliveries := []*delivery.Delivery{o1, o2}

		boundOrders, err := svc.AvailableOrders(courierID, deliveries, vendors)
		require.NoError(t, err)
		require.Len(t, boundOrders, 1)
		assert.True(t, boundOrders[0].IsEqual(o1.OrderID()))

		unboundOrders, err := svc.AvailableOrders(kernel.NewUUID(), deliveries, vendors)
		require.NoError(t, err)
		require.Len(t, unboundOrders, 1)
		assert.True(t, unboundOrders[0].IsEqual(o2.OrderID()))
	})

	t.Run("should never include assigned deliveries", func(t *testing.T) {
		vendorB := newVendorWithCouriers(t)
		taken := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)
		require.NoError(t, taken.AssignCourier(kernel.NewUUID()))
		free := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)

		orderIDs, err := svc.AvailableOrders(
			kernel.NewUUID(),
			[]*delivery.Delivery{taken, free},
			[]*vendor.Vendor{vendorB},
		)

		require.NoError(t, err)
		require.Len(t, orderIDs, 1)
		assert.True(t, orderIDs[0].IsEqual(free.OrderID()))
	})

	t.Run("should never include orders outside ACCEPTED", func(t *testing.T) {
		vendorB := newVendorWithCouriers(t)
		deliveries := make([]*delivery.Delivery, 0)
		for _, status := range []order.Status{
			order.Pending, order.Rejected, order.Preparing,
			order.GivenToCourier, order.OnTransit, order.Delivered,
		} {
			deliveries = append(deliveries, newDeliveryForVendor(t, vendorB.ID(), status))
		}

		orderIDs, err := svc.AvailableOrders(kernel.NewUUID(), deliveries, []*vendor.Vendor{vendorB})

		require.NoError(t, err)
		assert.Empty(t, orderIDs)
	})

	t.Run("bound courier sees exactly its vendor's accepted unassigned orders", func(t *testing.T) {
		courierID := kernel.NewUUID()
		own := newVendorWithCouriers(t, courierID)
		foreign := newVendorWithCouriers(t, kernel.NewUUID())
		open := newVendorWithCouriers(t)

		ownOrder := newDeliveryForVendor(t, own.ID(), order.Accepted)
		foreignOrder := newDeliveryForVendor(t, foreign.ID(), order.Accepted)
		openOrder := newDeliveryForVendor(t, open.ID(), order.Accepted)
		pendingOwn := newDeliveryForVendor(t, own.ID(), order.Pending)

		orderIDs, err := svc.AvailableOrders(
			courierID,
			[]*delivery.Delivery{ownOrder, foreignOrder, openOrder, pendingOwn},
			[]*vendor.Vendor{own, foreign, open},
		)

		require.NoError(t, err)
		require.Len(t, orderIDs, 1)
		assert.True(t, orderIDs[0].IsEqual(ownOrder.OrderID()))
	})

	t.Run("should preserve delivery iteration order", func(t *testing.T) {
		vendorB := newVendorWithCouriers(t)
		first := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)
		second := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)
		third := newDeliveryForVendor(t, vendorB.ID(), order.Accepted)

		orderIDs, err := svc.AvailableOrders(
			kernel.NewUUID(),
			[]*delivery.Delivery{first, second, third},
			[]*vendor.Vendor{vendorB},
		)

		require.NoError(t, err)
		require.Len(t, orderIDs, 3)
		assert.True(t, orderIDs[0].IsEqual(first.OrderID()))
		assert.True(t, orderIDs[1].IsEqual(second.OrderID()))
		assert.True(t, orderIDs[2].IsEqual(third.OrderID()))
	})

	t.Run("should return empty list when nothing qualifies", func(t *testing.T) {
		orderIDs, err := svc.AvailableOrders(kernel.NewUUID(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, orderIDs)
	})

	t.Run("should reject zero courier id", func(t *testing.T) {
		_, err := svc.AvailableOrders(kernel.UUID{}, nil, nil)

		require.Error(t, err)
	})
}
