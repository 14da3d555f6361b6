package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
)

// CreateDeliveryCommandHandler handles order intake. It verifies the vendor
// exists, creates the order in PENDING status, and wraps it in an
// unassigned delivery record.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for order intake.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle creates the order and its delivery inside one transaction. A
// duplicate order id fails with an ObjectAlreadyExistsError; an unknown
// vendor fails with an ObjectNotFoundError.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if _, err := uow.VendorRepository().Get(ctx, cmd.VendorID()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.VendorID(), cmd.Destination())
	if err != nil {
		return err
	}

	newDelivery, err := delivery.NewDelivery(cmd.OrderID(), newOrder)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
