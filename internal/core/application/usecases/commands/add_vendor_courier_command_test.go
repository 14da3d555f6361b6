package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddVendorCourierCommand_ValidInput(t *testing.T) {
	vendorID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAddVendorCourierCommand(vendorID, courierID)
	require.NoError(t, err)
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, courierID, cmd.CourierID())
}

func TestNewAddVendorCourierCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAddVendorCourierCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewAddVendorCourierCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
