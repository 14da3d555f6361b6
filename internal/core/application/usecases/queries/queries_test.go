package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderStatusQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetOrderStatusQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatusQueryIsNotConstructed)
}

func TestNewGetAvailableOrdersQuery(t *testing.T) {
	courierID := kernel.NewUUID()
	query, err := queries.NewGetAvailableOrdersQuery(courierID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())

	_, err = queries.NewGetAvailableOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetDeliveryDetailsQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetDeliveryDetailsQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetDeliveryDetailsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetDeliveryZoneQuery(t *testing.T) {
	vendorID := kernel.NewUUID()
	query, err := queries.NewGetDeliveryZoneQuery(vendorID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, vendorID, query.VendorID())

	_, err = queries.NewGetDeliveryZoneQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetRatingQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetRatingQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetRatingQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetCourierAnalyticsQuery(t *testing.T) {
	courierID := kernel.NewUUID()
	query, err := queries.NewGetCourierAnalyticsQuery(courierID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, courierID, query.CourierID())

	_, err = queries.NewGetCourierAnalyticsQuery(kernel.UUID{})
	require.Error(t, err)
}
