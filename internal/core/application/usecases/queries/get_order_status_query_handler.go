package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler reads an order's status straight from the
// deliveries table.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when no
// delivery owns the order id.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var status string
	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetOrderStatusQueryResponse{}, err
	}

	return GetOrderStatusQueryResponse{
		OrderID: query.OrderID(),
		Status:  status,
	}, nil
}
