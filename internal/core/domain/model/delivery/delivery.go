package delivery

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrCourierAlreadyAssigned is returned when assigning a courier to a
	// delivery that already has one. Assignment is one-way: UNASSIGNED to
	// ASSIGNED, never back.
	ErrCourierAlreadyAssigned = errors.New("delivery already has a courier assigned")

	// ErrOrderNotDelivered is returned when rating a delivery whose order
	// has not reached the DELIVERED status.
	ErrOrderNotDelivered = errors.New("order has not been delivered yet")

	// ErrRatingAlreadySet is returned when rating a delivery a second time.
	ErrRatingAlreadySet = errors.New("delivery rating is already set")
)

// Delivery is the aggregate root for order fulfillment. It owns exactly one
// Order (the delivery is keyed by the order id), an optional courier
// binding, an optional customer rating, an optional issue report, and the
// ready/pickup/delivered timestamps.
//
// The version field supports optimistic concurrency on courier assignment:
// the repository refuses a write whose version lags the stored one, so at
// most one courier ever wins an assignment race.
type Delivery struct {
	id          kernel.UUID
	order       *order.Order
	courierID   *kernel.UUID
	rating      *Rating
	issue       *string
	readyAt     *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	version     int64

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery for a freshly created order: no courier,
// no rating, no issue, no timestamps, version zero.
func NewDelivery(id kernel.UUID, o *order.Order) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setID(id), d.setOrder(o)); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with its full
// optional state and stored version.
func RestoreDelivery(
	id kernel.UUID,
	o *order.Order,
	courierID *kernel.UUID,
	rating *Rating,
	issue *string,
	readyAt, pickedUpAt, deliveredAt *time.Time,
	version int64,
) (*Delivery, error) {
	d, err := NewDelivery(id, o)
	if err != nil {
		return nil, err
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		d.courierID = courierID
	}

	if rating != nil {
		if err = rating.Validate(); err != nil {
			return nil, err
		}
		d.rating = rating
	}

	d.issue = issue
	d.readyAt = readyAt
	d.pickedUpAt = pickedUpAt
	d.deliveredAt = deliveredAt
	d.version = version
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Order returns the order this delivery fulfills.
func (d *Delivery) Order() *order.Order {
	return d.order
}

// OrderID returns the identifier of the owned order. The delivery is keyed
// by it in every lookup path.
func (d *Delivery) OrderID() kernel.UUID {
	return d.order.ID()
}

// CourierID returns the assigned courier's identifier, or nil while
// unassigned.
func (d *Delivery) CourierID() *kernel.UUID {
	return d.courierID
}

// Rating returns the customer's rating, or nil when not rated yet.
func (d *Delivery) Rating() *Rating {
	return d.rating
}

// Issue returns the reported issue, or nil when none was reported.
func (d *Delivery) Issue() *string {
	return d.issue
}

// ReadyAt returns the time the vendor marked the order ready for pickup.
func (d *Delivery) ReadyAt() *time.Time {
	return d.readyAt
}

// PickedUpAt returns the time the courier collected the order.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the time of delivery to the customer.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Version returns the optimistic-concurrency version read from storage.
func (d *Delivery) Version() int64 {
	return d.version
}

// IsAssigned reports whether a courier is bound to the delivery.
func (d *Delivery) IsAssigned() bool {
	return d.courierID != nil
}

// IsAwaitingCourier reports whether the delivery is currently assignable:
// no courier bound and the order in exactly the ACCEPTED status.
func (d *Delivery) IsAwaitingCourier() bool {
	return d.courierID == nil && d.order.IsAssignable()
}

// AssignCourier binds a courier to the delivery. The binding happens exactly
// once; a second call fails with ErrCourierAlreadyAssigned and the engine
// never clears it.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	d.courierID = &courierID
	return nil
}

// SetRating stores the customer's rating. The order must have reached
// DELIVERED and the rating must not have been set before.
func (d *Delivery) SetRating(rating Rating) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if err := rating.Validate(); err != nil {
		return err
	}

	if d.order.Status() != order.Delivered {
		return ErrOrderNotDelivered
	}

	if d.rating != nil {
		return ErrRatingAlreadySet
	}

	d.rating = &rating
	return nil
}

// ReportIssue records a free-form issue description on the delivery,
// overwriting any earlier report.
func (d *Delivery) ReportIssue(issue string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.issue = &issue
	return nil
}

// MarkReady records when the vendor finished preparing the order.
func (d *Delivery) MarkReady(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.readyAt = &at
	return nil
}

// MarkPickedUp records when the courier collected the order.
func (d *Delivery) MarkPickedUp(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.pickedUpAt = &at
	return nil
}

// MarkDelivered records when the order reached the customer.
func (d *Delivery) MarkDelivered(at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.deliveredAt = &at
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	d.order = o
	return nil
}
