package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
)

// ErrNoAvailableOrders is returned when no order is currently available to
// the pulling courier under the vendor-exclusivity rules.
var ErrNoAvailableOrders = errors.New("no orders available for assignment")

// AssignAnyOrderCommandHandler handles courier-initiated pulls: the courier
// asks for work and the engine picks the available order with the lowest
// id. The availability filter runs inside the same transaction as the
// write, and the version guard on the delivery closes the remaining race
// window.
type AssignAnyOrderCommandHandler struct {
	uowFactory   UoWFactory
	availability services.OrderAvailabilityService
}

// NewAssignAnyOrderCommandHandler creates a handler for courier pulls.
func NewAssignAnyOrderCommandHandler(uowFactory UoWFactory) AssignAnyOrderCommandHandler {
	return AssignAnyOrderCommandHandler{
		uowFactory:   uowFactory,
		availability: services.NewOrderAvailabilityService(),
	}
}

// Handle picks and assigns the next available order for the courier.
//
// Returns:
//   - ErrNoAvailableOrders when the availability filter yields nothing
//   - VersionConflictError when a concurrent assignment won the race
func (h AssignAnyOrderCommandHandler) Handle(ctx context.Context, cmd AssignAnyOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	awaiting, err := uow.DeliveryRepository().GetAllAwaitingCourier(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	vendors, err := uow.VendorRepository().GetAll(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	available, err := h.availability.AvailableOrders(cmd.CourierID(), awaiting, vendors)
	if err != nil {
		return kernel.UUID{}, err
	}

	if len(available) == 0 {
		return kernel.UUID{}, ErrNoAvailableOrders
	}

	// awaiting is sorted by order id, so the first available id is the
	// lowest one.
	picked := pickDelivery(awaiting, available[0])

	if err = picked.AssignCourier(cmd.CourierID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DeliveryRepository().Update(ctx, picked); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return picked.OrderID(), nil
}

func pickDelivery(deliveries []*delivery.Delivery, orderID kernel.UUID) *delivery.Delivery {
	for _, d := range deliveries {
		if d.OrderID().IsEqual(orderID) {
			return d
		}
	}
	return nil
}
