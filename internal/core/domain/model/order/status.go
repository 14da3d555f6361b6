package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with explicitly enumerated transitions:
//
//	PENDING ──┬──> ACCEPTED ──> PREPARING ──> GIVEN_TO_COURIER ──> ON_TRANSIT ──> DELIVERED
//	          └──> REJECTED
//
// PENDING is the initial state; REJECTED and DELIVERED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of a freshly created order,
	// awaiting the vendor's decision.
	Pending

	// Accepted means the vendor has taken the order. Only orders in this
	// status with no courier bound are assignable.
	Accepted

	// Rejected means the vendor declined the order. Terminal.
	Rejected

	// Preparing means the vendor is preparing the order.
	Preparing

	// GivenToCourier means the order has been handed over to the courier.
	GivenToCourier

	// OnTransit means the courier is under way to the customer.
	OnTransit

	// Delivered means the order reached the customer. Terminal.
	Delivered
)

var (
	// ErrInvalidStatusValue is returned when a status string cannot be
	// parsed into a known Status.
	ErrInvalidStatusValue = errors.New("invalid order status value")

	// ErrIllegalTransition is the sentinel wrapped by every
	// IllegalTransitionError.
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// IllegalTransitionError names a rejected (from, to) status pair.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// getStatusStrings returns the wire representation of every Status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		Rejected:       "REJECTED",
		Preparing:      "PREPARING",
		GivenToCourier: "GIVEN_TO_COURIER",
		OnTransit:      "ON_TRANSIT",
		Delivered:      "DELIVERED",
	}
}

// getTransitions returns the full transition table. Absence of a (from, to)
// pair means the transition is illegal; terminal states have no entries.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Accepted, Rejected},
		Accepted:       {Preparing},
		Preparing:      {GivenToCourier},
		GivenToCourier: {OnTransit},
		OnTransit:      {Delivered},
	}
}

// ParseStatus converts a wire status string into a Status.
// Unknown strings fail with ErrInvalidStatusValue before any transition
// evaluation takes place.
func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == value {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: %q", ErrInvalidStatusValue, value)
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate reports whether the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return fmt.Errorf("%w: %d", ErrInvalidStatusValue, int(s))
	}
	return nil
}

// IsTerminal reports whether no outgoing transitions are defined for the
// status.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the (s, next) pair appears in the
// transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the (s, next) pair against the transition table.
//
// Returns:
//   - (next, nil) when the transition is enumerated
//   - (StatusUnknown, *IllegalTransitionError) naming the rejected pair otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransitionTo(next) {
		return StatusUnknown, &IllegalTransitionError{From: s, To: next}
	}

	return next, nil
}
