package commands

import (
	"context"
)

// UpdateDeliveryDetailsCommandHandler handles detail patches on a delivery:
// issue reports and the fulfillment timestamps.
type UpdateDeliveryDetailsCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryDetailsCommandHandler creates a handler for delivery
// detail patches.
func NewUpdateDeliveryDetailsCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryDetailsCommandHandler {
	return UpdateDeliveryDetailsCommandHandler{uowFactory: uowFactory}
}

// Handle applies the non-nil fields of the command to the delivery.
//
// Returns:
//   - ObjectNotFoundError when no delivery owns the order id
func (h UpdateDeliveryDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryDetailsCommand) error {
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

	if issue := cmd.Issue(); issue != nil {
		if err = aggregate.ReportIssue(*issue); err != nil {
			return err
		}
	}

	if at := cmd.ReadyAt(); at != nil {
		if err = aggregate.MarkReady(*at); err != nil {
			return err
		}
	}

	if at := cmd.PickedUpAt(); at != nil {
		if err = aggregate.MarkPickedUp(*at); err != nil {
			return err
		}
	}

	if at := cmd.DeliveredAt(); at != nil {
		if err = aggregate.MarkDelivered(*at); err != nil {
			return err
		}
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
