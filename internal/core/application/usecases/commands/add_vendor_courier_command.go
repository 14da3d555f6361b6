package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddVendorCourierCommandIsNotConstructed = errors.New(
	"AddVendorCourierCommand must be created via NewAddVendorCourierCommand constructor",
)

// AddVendorCourierCommand binds a courier to a vendor's own pool. A vendor
// with at least one pooled courier becomes self-fulfilling: its orders are
// reserved for its pool and it may manage its delivery zone.
type AddVendorCourierCommand struct { //nolint:recvcheck //using for validation
	vendorID  kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddVendorCourierCommand creates a command to add the courier to the
// vendor's pool.
func NewAddVendorCourierCommand(vendorID, courierID kernel.UUID) (AddVendorCourierCommand, error) {
	cmd := AddVendorCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AddVendorCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVendorCourierCommand) Validate() error {
	return c.guard.Validate(ErrAddVendorCourierCommandIsNotConstructed)
}

// VendorID returns the identifier of the pooling vendor.
func (c AddVendorCourierCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// CourierID returns the identifier of the courier joining the pool.
func (c AddVendorCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AddVendorCourierCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *AddVendorCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
