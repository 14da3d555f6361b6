package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryDetailsCommandIsNotConstructed = errors.New(
	"UpdateDeliveryDetailsCommand must be created via NewUpdateDeliveryDetailsCommand constructor",
)

// UpdateDeliveryDetailsCommand patches the mutable details of a delivery:
// the issue report and the ready/pickup/delivery timestamps. Nil fields
// stay untouched; at least one field must be set.
type UpdateDeliveryDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	issue       *string
	readyAt     *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryDetailsCommand creates a command to patch delivery
// details for the given order. All detail fields are optional but at least
// one must be non-nil.
func NewUpdateDeliveryDetailsCommand(
	orderID kernel.UUID,
	issue *string,
	readyAt, pickedUpAt, deliveredAt *time.Time,
) (UpdateDeliveryDetailsCommand, error) {
	cmd := UpdateDeliveryDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateDeliveryDetailsCommand{}, err
	}

	if issue == nil && readyAt == nil && pickedUpAt == nil && deliveredAt == nil {
		return UpdateDeliveryDetailsCommand{}, errs.NewValueIsRequiredError("delivery details")
	}

	cmd.issue = issue
	cmd.readyAt = readyAt
	cmd.pickedUpAt = pickedUpAt
	cmd.deliveredAt = deliveredAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryDetailsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery is patched.
func (c UpdateDeliveryDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Issue returns the issue report to record, or nil to leave it untouched.
func (c UpdateDeliveryDetailsCommand) Issue() *string {
	return c.issue
}

// ReadyAt returns the ready timestamp to record, or nil.
func (c UpdateDeliveryDetailsCommand) ReadyAt() *time.Time {
	return c.readyAt
}

// PickedUpAt returns the pickup timestamp to record, or nil.
func (c UpdateDeliveryDetailsCommand) PickedUpAt() *time.Time {
	return c.pickedUpAt
}

// DeliveredAt returns the delivery timestamp to record, or nil.
func (c UpdateDeliveryDetailsCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

func (c *UpdateDeliveryDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
