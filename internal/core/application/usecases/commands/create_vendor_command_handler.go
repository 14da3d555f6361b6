package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/vendor"
	"fooddelivery/internal/core/ports"
)

// CreateVendorCommandHandler handles vendor registration. The address is
// resolved through the location collaborator; a failed resolution blocks
// the creation outright. The delivery zone starts at the configured
// platform default.
type CreateVendorCommandHandler struct {
	uowFactory    VendorUoWFactory
	locations     ports.VendorLocationClient
	defaultZoneKm float64
}

// NewCreateVendorCommandHandler creates a handler for vendor registration.
// defaultZoneKm is the initial delivery zone radius from configuration.
func NewCreateVendorCommandHandler(
	uowFactory VendorUoWFactory,
	locations ports.VendorLocationClient,
	defaultZoneKm float64,
) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory:    uowFactory,
		locations:     locations,
		defaultZoneKm: defaultZoneKm,
	}
}

// Handle resolves the vendor's address and persists the new vendor with an
// empty courier pool. Location lookup failures propagate unchanged.
func (h CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := h.locations.LocationOf(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	newVendor, err := vendor.NewVendor(cmd.VendorID(), address, h.defaultZoneKm)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VendorRepository().Add(ctx, newVendor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
