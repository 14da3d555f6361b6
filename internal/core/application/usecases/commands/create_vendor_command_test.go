package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateVendorCommand_ValidInput(t *testing.T) {
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewCreateVendorCommand(vendorID)
	require.NoError(t, err)
	assert.Equal(t, vendorID, cmd.VendorID())
}

func TestNewCreateVendorCommand_InvalidVendorID(t *testing.T) {
	_, err := commands.NewCreateVendorCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateVendorCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateVendorCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateVendorCommandIsNotConstructed)
}
