package commands

import (
	"context"
)

// UpdateDeliveryZoneCommandHandler handles delivery zone changes. The
// vendor aggregate rejects the change when the vendor has no couriers of
// its own.
type UpdateDeliveryZoneCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateDeliveryZoneCommandHandler creates a handler for zone changes.
func NewUpdateDeliveryZoneCommandHandler(uowFactory VendorUoWFactory) UpdateDeliveryZoneCommandHandler {
	return UpdateDeliveryZoneCommandHandler{uowFactory: uowFactory}
}

// Handle changes the vendor's delivery zone radius.
//
// Returns:
//   - ObjectNotFoundError when the vendor id is unknown
//   - vendor.ErrNoCouriers when the vendor is not self-fulfilling
func (h UpdateDeliveryZoneCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeDeliveryZone(cmd.ZoneKm()); err != nil {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
