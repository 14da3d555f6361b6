package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand advances an order through its lifecycle. The status
// travels as its wire string; the handler parses it after the order lookup
// so an unknown order reports as not found rather than as a bad status.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorID   kernel.UUID
	rawStatus string

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to change an order's status.
// rawStatus is the wire form, for example "ACCEPTED"; it must be non-empty
// but is parsed later by the handler. actorID identifies the caller and is
// forwarded with the status push.
func NewSetOrderStatusCommand(orderID, actorID kernel.UUID, rawStatus string) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setRawStatus(rawStatus),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the caller requesting the change.
func (c SetOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RawStatus returns the requested status as its wire string.
func (c SetOrderStatusCommand) RawStatus() string {
	return c.rawStatus
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SetOrderStatusCommand) setRawStatus(rawStatus string) error {
	if strings.TrimSpace(rawStatus) == "" {
		return errs.NewValueIsRequiredError("status")
	}
	c.rawStatus = rawStatus
	return nil
}
