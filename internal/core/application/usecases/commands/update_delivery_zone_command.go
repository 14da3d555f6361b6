package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryZoneCommandIsNotConstructed = errors.New(
	"UpdateDeliveryZoneCommand must be created via NewUpdateDeliveryZoneCommand constructor",
)

// UpdateDeliveryZoneCommand changes a vendor's delivery zone radius. Only
// vendors with their own courier pool may change it.
type UpdateDeliveryZoneCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	zoneKm   float64

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryZoneCommand creates a command to change the delivery
// zone radius of the given vendor. zoneKm must be positive.
func NewUpdateDeliveryZoneCommand(vendorID kernel.UUID, zoneKm float64) (UpdateDeliveryZoneCommand, error) {
	cmd := UpdateDeliveryZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setZoneKm(zoneKm),
	); err != nil {
		return UpdateDeliveryZoneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryZoneCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor to update.
func (c UpdateDeliveryZoneCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// ZoneKm returns the requested zone radius in kilometers.
func (c UpdateDeliveryZoneCommand) ZoneKm() float64 {
	return c.zoneKm
}

func (c *UpdateDeliveryZoneCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *UpdateDeliveryZoneCommand) setZoneKm(zoneKm float64) error {
	if zoneKm <= 0 {
		return errs.NewValueIsInvalidError("deliveryZoneKm")
	}
	c.zoneKm = zoneKm
	return nil
}
