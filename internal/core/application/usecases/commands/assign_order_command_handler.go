package commands

import (
	"context"
)

// AssignOrderCommandHandler handles operator-directed courier assignment.
// The courier id is taken as given; the write is still guarded by the
// delivery's version, so two racing assignments cannot both win.
type AssignOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for directed assignment.
func NewAssignOrderCommandHandler(uowFactory DeliveryUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{uowFactory: uowFactory}
}

// Handle binds the courier to the order's delivery.
//
// Returns:
//   - ObjectNotFoundError when no delivery owns the order id
//   - delivery.ErrCourierAlreadyAssigned when the delivery has a courier
//   - VersionConflictError when a concurrent assignment won the race
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	aggregate, err := uow.DeliveryRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
