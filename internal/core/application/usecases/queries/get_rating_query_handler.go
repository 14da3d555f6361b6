package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRatingQueryHandler reads an order's rating from the deliveries table.
// An existing delivery without a rating reports the rating itself as not
// found, distinguishable from an unknown order only by the error's
// parameter name.
type GetRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetRatingQueryHandler creates a handler for rating queries.
func NewGetRatingQueryHandler(db *gorm.DB) GetRatingQueryHandler {
	return GetRatingQueryHandler{db: db}
}

// Handle executes the query.
//
// Returns:
//   - ObjectNotFoundError("orderId", ...) when the order is unknown
//   - ObjectNotFoundError("rating", ...) when the delivery is not rated
func (h GetRatingQueryHandler) Handle(
	ctx context.Context,
	query GetRatingQuery,
) (GetRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRatingQueryResponse{}, err
	}

	var rating sql.NullInt64
	row := h.db.WithContext(ctx).Raw(`
		SELECT rating
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRatingQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetRatingQueryResponse{}, err
	}

	if !rating.Valid {
		return GetRatingQueryResponse{}, errs.NewObjectNotFoundError("rating", query.OrderID())
	}

	return GetRatingQueryResponse{
		OrderID: query.OrderID(),
		Rating:  int(rating.Int64),
	}, nil
}
