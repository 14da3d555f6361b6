package commands

import (
	"context"
)

// SaveRatingCommandHandler handles customer ratings. A rating lands exactly
// once, and only after the order reached DELIVERED.
type SaveRatingCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewSaveRatingCommandHandler creates a handler for customer ratings.
func NewSaveRatingCommandHandler(uowFactory DeliveryUoWFactory) SaveRatingCommandHandler {
	return SaveRatingCommandHandler{uowFactory: uowFactory}
}

// Handle stores the rating on the order's delivery.
//
// Returns:
//   - ObjectNotFoundError when no delivery owns the order id
//   - delivery.ErrOrderNotDelivered when the order is not DELIVERED yet
//   - delivery.ErrRatingAlreadySet when the delivery was rated before
func (h SaveRatingCommandHandler) Handle(ctx context.Context, cmd SaveRatingCommand) error {
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

	if err = aggregate.SetRating(cmd.Rating()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
