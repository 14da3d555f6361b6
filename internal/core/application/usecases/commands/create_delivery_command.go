package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand creates an order together with its delivery
// record. The order starts in PENDING status, the delivery unassigned.
//
// Example:
//
//	destination, _ := kernel.NewLocation(52.37, 4.89)
//	cmd, err := commands.NewCreateDeliveryCommand(orderID, customerID, vendorID, destination)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // vendor unknown, or order id already taken
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	vendorID    kernel.UUID
	destination kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new order with
// its delivery. All identifiers and the destination must be valid.
func NewCreateDeliveryCommand(orderID, customerID, vendorID kernel.UUID, destination kernel.Location) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setVendorID(vendorID),
		cmd.setDestination(destination),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the identifier of the fulfilling vendor.
func (c CreateDeliveryCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Destination returns the delivery destination.
func (c CreateDeliveryCommand) Destination() kernel.Location {
	return c.destination
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}

func (c *CreateDeliveryCommand) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
