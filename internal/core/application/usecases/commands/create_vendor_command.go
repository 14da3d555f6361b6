package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand registers a new vendor on the platform. The vendor's
// address is not part of the command: it is resolved exactly once from the
// location collaborator during handling, and an unresolvable address
// blocks creation.
type CreateVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a command to register the vendor with the
// given id.
func NewCreateVendorCommand(vendorID kernel.UUID) (CreateVendorCommand, error) {
	cmd := CreateVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVendorID(vendorID); err != nil {
		return CreateVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the identifier for the new vendor.
func (c CreateVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *CreateVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}
