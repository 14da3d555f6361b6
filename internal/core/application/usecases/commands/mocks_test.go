package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/vendor"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllAwaitingCourier(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendor.Vendor), args.Error(1)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUnitOfWork) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	args := m.Called()
	return args.Get(0).(commands.VendorUoW)
}

type MockVendorLocationClient struct{ mock.Mock }

func (m *MockVendorLocationClient) LocationOf(ctx context.Context, vendorID kernel.UUID) (kernel.Location, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockOrderStatusNotifier struct{ mock.Mock }

func (m *MockOrderStatusNotifier) PushStatus(ctx context.Context, orderID, userID kernel.UUID, status order.Status) error {
	args := m.Called(ctx, orderID, userID, status)
	return args.Error(0)
}

func newTestDelivery(t *testing.T, status order.Status) *delivery.Delivery {
	t.Helper()

	destination, err := kernel.NewLocation(52.37, 4.89)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), destination, status)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(o.ID(), o)
	require.NoError(t, err)
	return d
}

func newTestVendor(t *testing.T, couriers ...kernel.UUID) *vendor.Vendor {
	t.Helper()

	address, err := kernel.NewLocation(52.09, 5.12)
	require.NoError(t, err)

	v, err := vendor.RestoreVendor(kernel.NewUUID(), address, 5, couriers)
	require.NoError(t, err)
	return v
}
