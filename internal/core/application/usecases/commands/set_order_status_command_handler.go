package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// SetOrderStatusCommandHandler handles order lifecycle changes. The status
// string is parsed only after the order lookup succeeded, so callers get
// the not-found error first and the bad-status error second.
//
// After a successful commit the new status is pushed to the orders service.
// The push is best-effort: a failure is logged and queued for retry inside
// the notifier, it never fails the command.
type SetOrderStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.OrderStatusNotifier
	log        *slog.Logger
}

// NewSetOrderStatusCommandHandler creates a handler for order status
// changes.
func NewSetOrderStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.OrderStatusNotifier,
	log *slog.Logger,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "SetOrderStatusCommandHandler"),
	}
}

// Handle advances the order to the requested status.
//
// Returns:
//   - ObjectNotFoundError when no delivery owns the order id
//   - ErrInvalidStatusValue when the status string is not a known status
//   - *order.IllegalTransitionError when the state machine forbids the move
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	next, err := order.ParseStatus(cmd.RawStatus())
	if err != nil {
		return err
	}

	if err = aggregate.Order().ChangeStatus(next); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.PushStatus(ctx, cmd.OrderID(), cmd.ActorID(), next); err != nil {
		h.log.Warn("status push failed, queued for retry",
			"orderId", cmd.OrderID().String(), "status", next.String(), "error", err)
	}

	return nil
}
