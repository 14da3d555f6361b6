package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeliveryForVendor(t *testing.T, vendorID kernel.UUID) *delivery.Delivery {
	t.Helper()

	destination, err := kernel.NewLocation(52.37, 4.89)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), vendorID, destination, order.Accepted)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(o.ID(), o)
	require.NoError(t, err)
	return d
}

func TestAssignAnyOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	boundVendor := newTestVendor(t, courierID)
	testDelivery := newTestDeliveryForVendor(t, boundVendor.ID())
	cmd, err := commands.NewAssignAnyOrderCommand(courierID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)

	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("GetAllAwaitingCourier", ctx).Return([]*delivery.Delivery{testDelivery}, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{boundVendor}, nil).Once(),
		deliveryRepo.On("Update", ctx, testDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignAnyOrderCommandHandler(factory)
	pickedOrderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, pickedOrderID.IsEqual(testDelivery.OrderID()))
	require.NotNil(t, testDelivery.CourierID())
	assert.True(t, testDelivery.CourierID().IsEqual(courierID))
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	vendorRepo.AssertExpectations(t)
}

func TestAssignAnyOrderCommandHandler_Handle_PicksFirstAvailable(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	boundVendor := newTestVendor(t, courierID)
	first := newTestDeliveryForVendor(t, boundVendor.ID())
	second := newTestDeliveryForVendor(t, boundVendor.ID())
	cmd, err := commands.NewAssignAnyOrderCommand(courierID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)

	uow.On("DeliveryRepository").Return(deliveryRepo).Twice()
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		deliveryRepo.On("GetAllAwaitingCourier", ctx).Return([]*delivery.Delivery{first, second}, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{boundVendor}, nil).Once(),
		deliveryRepo.On("Update", ctx, first).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignAnyOrderCommandHandler(factory)
	pickedOrderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, pickedOrderID.IsEqual(first.OrderID()))
	assert.Nil(t, second.CourierID())
}

func TestAssignAnyOrderCommandHandler_Handle_NoAvailableOrders(t *testing.T) {
	ctx := context.Background()
	courierID := kernel.NewUUID()
	// The only awaiting delivery belongs to a self-fulfilling vendor whose
	// pool does not include this courier.
	otherVendor := newTestVendor(t, kernel.NewUUID())
	reserved := newTestDeliveryForVendor(t, otherVendor.ID())
	cmd, err := commands.NewAssignAnyOrderCommand(courierID)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetAllAwaitingCourier", ctx).Return([]*delivery.Delivery{reserved}, nil).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{otherVendor}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignAnyOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoAvailableOrders)
	assert.Nil(t, reserved.CourierID())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
