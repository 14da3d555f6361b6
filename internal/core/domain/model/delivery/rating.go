package delivery

import (
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// RatingMin is the lowest score a customer can give a delivery.
	RatingMin = 1
	// RatingMax is the highest score a customer can give a delivery.
	RatingMax = 5
)

// ErrRatingIsNotConstructed is returned when a Rating was not created via
// NewRating.
var ErrRatingIsNotConstructed = errs.NewValueIsRequiredError("rating must be created via NewRating")

// Rating is the customer's score for a completed delivery, an immutable
// value object bounded to [RatingMin, RatingMax].
type Rating struct {
	value int
	guard guard.ConstructorGuard
}

// NewRating creates a Rating, rejecting values outside [RatingMin, RatingMax].
func NewRating(value int) (Rating, error) {
	if value < RatingMin || value > RatingMax {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}

	return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Value returns the score.
func (r Rating) Value() int {
	return r.value
}

// Validate returns ErrRatingIsNotConstructed for the zero value.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}
