package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate tracking a customer's purchase with a vendor.
// Its identity, customer, vendor, and destination are immutable after
// creation; only the status mutates, and only through the state machine.
//
// Example:
//
//	destination, _ := kernel.NewLocation(52.37, 4.89)
//	o, err := order.NewOrder(orderID, customerID, vendorID, destination)
//	if err != nil {
//	    // handle validation error
//	}
//	// o.Status() == order.Pending
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	vendorID    kernel.UUID
	destination kernel.Location
	status      Status

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in Pending status. All identifiers and the
// destination must be valid; errors from the individual setters are joined.
func NewOrder(id, customerID, vendorID kernel.UUID, destination kernel.Location) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an arbitrary
// (but valid) status. It performs the same field validation as NewOrder.
func RestoreOrder(id, customerID, vendorID kernel.UUID, destination kernel.Location, status Status) (*Order, error) {
	o, err := NewOrder(id, customerID, vendorID, destination)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the identifier of the vendor fulfilling the order.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Destination returns the delivery destination.
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsAssignable reports whether the order may receive a courier: exactly
// the Accepted status qualifies. Courier absence is checked on the
// Delivery, not here.
func (o *Order) IsAssignable() bool {
	return o.status == Accepted
}

// ChangeStatus applies a validated transition to the order.
//
// Returns:
//   - nil when the (current, next) pair is enumerated in the state machine
//   - *IllegalTransitionError otherwise, leaving the order unchanged
func (o *Order) ChangeStatus(next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
