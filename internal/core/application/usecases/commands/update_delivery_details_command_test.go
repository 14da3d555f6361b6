package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryDetailsCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	issue := "cold food"
	readyAt := time.Now()

	cmd, err := commands.NewUpdateDeliveryDetailsCommand(orderID, &issue, &readyAt, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	require.NotNil(t, cmd.Issue())
	assert.Equal(t, "cold food", *cmd.Issue())
	require.NotNil(t, cmd.ReadyAt())
	assert.Nil(t, cmd.PickedUpAt())
	assert.Nil(t, cmd.DeliveredAt())
}

func TestNewUpdateDeliveryDetailsCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateDeliveryDetailsCommand(kernel.NewUUID(), nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateDeliveryDetailsCommand_InvalidOrderID(t *testing.T) {
	issue := "late"
	_, err := commands.NewUpdateDeliveryDetailsCommand(kernel.UUID{}, &issue, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
