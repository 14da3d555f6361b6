package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/services"
)

// ErrCourierBoundToAnotherVendor is returned when pooling a courier that
// already belongs to a different vendor. A courier serves at most one
// vendor at a time.
var ErrCourierBoundToAnotherVendor = errors.New("courier already belongs to another vendor")

// AddVendorCourierCommandHandler handles courier pooling. Exclusivity is
// checked against the whole vendor roster inside the transaction.
type AddVendorCourierCommandHandler struct {
	uowFactory VendorUoWFactory
	affinity   services.CourierAffinityResolver
}

// NewAddVendorCourierCommandHandler creates a handler for courier pooling.
func NewAddVendorCourierCommandHandler(uowFactory VendorUoWFactory) AddVendorCourierCommandHandler {
	return AddVendorCourierCommandHandler{
		uowFactory: uowFactory,
		affinity:   services.NewCourierAffinityResolver(),
	}
}

// Handle adds the courier to the vendor's pool.
//
// Returns:
//   - ObjectNotFoundError when the vendor id is unknown
//   - vendor.ErrCourierAlreadyInPool when the courier is already pooled here
//   - ErrCourierBoundToAnotherVendor when another vendor holds the courier
func (h AddVendorCourierCommandHandler) Handle(ctx context.Context, cmd AddVendorCourierCommand) error {
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

	vendors, err := uow.VendorRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	boundVendorID, err := h.affinity.VendorForCourier(cmd.CourierID(), vendors)
	switch {
	case err == nil && !boundVendorID.IsEqual(cmd.VendorID()):
		return ErrCourierBoundToAnotherVendor
	case err != nil && !errors.Is(err, services.ErrCourierUnbound):
		return err
	}

	aggregate, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = aggregate.AddCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.VendorRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
