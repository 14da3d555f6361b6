package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignAnyOrderCommandIsNotConstructed = errors.New(
	"AssignAnyOrderCommand must be created via NewAssignAnyOrderCommand constructor",
)

// AssignAnyOrderCommand lets a courier pull the next available order.
// Availability is decided by the vendor-exclusivity rules; among the
// available orders the one with the lowest id wins.
type AssignAnyOrderCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAnyOrderCommand creates a command for the given courier to take
// the next available order.
func NewAssignAnyOrderCommand(courierID kernel.UUID) (AssignAnyOrderCommand, error) {
	cmd := AssignAnyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return AssignAnyOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAnyOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignAnyOrderCommandIsNotConstructed)
}

// CourierID returns the identifier of the pulling courier.
func (c AssignAnyOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignAnyOrderCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
