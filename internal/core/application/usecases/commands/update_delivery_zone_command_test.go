package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryZoneCommand_ValidInput(t *testing.T) {
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryZoneCommand(vendorID, 12.5)
	require.NoError(t, err)
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.InDelta(t, 12.5, cmd.ZoneKm(), 0.001)
}

func TestNewUpdateDeliveryZoneCommand_NonPositiveZone(t *testing.T) {
	_, err := commands.NewUpdateDeliveryZoneCommand(kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateDeliveryZoneCommand(kernel.NewUUID(), -3)
	require.Error(t, err)
}

func TestNewUpdateDeliveryZoneCommand_InvalidVendorID(t *testing.T) {
	_, err := commands.NewUpdateDeliveryZoneCommand(kernel.UUID{}, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
