package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSaveRatingCommandIsNotConstructed = errors.New(
	"SaveRatingCommand must be created via NewSaveRatingCommand constructor",
)

// SaveRatingCommand records the customer's rating for a delivered order.
type SaveRatingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rating  delivery.Rating

	guard guard.ConstructorGuard
}

// NewSaveRatingCommand creates a command to rate the delivery of the given
// order. value must be between delivery.RatingMin and delivery.RatingMax.
func NewSaveRatingCommand(orderID kernel.UUID, value int) (SaveRatingCommand, error) {
	cmd := SaveRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SaveRatingCommand{}, err
	}

	rating, err := delivery.NewRating(value)
	if err != nil {
		return SaveRatingCommand{}, err
	}
	cmd.rating = rating

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveRatingCommand) Validate() error {
	return c.guard.Validate(ErrSaveRatingCommandIsNotConstructed)
}

// OrderID returns the identifier of the rated order.
func (c SaveRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the validated rating value object.
func (c SaveRatingCommand) Rating() delivery.Rating {
	return c.rating
}

func (c *SaveRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
