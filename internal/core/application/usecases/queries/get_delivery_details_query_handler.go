package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryDetailsQueryHandler reads the full delivery record from the
// deliveries table.
type GetDeliveryDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryDetailsQueryHandler creates a handler for delivery detail
// queries.
func NewGetDeliveryDetailsQueryHandler(db *gorm.DB) GetDeliveryDetailsQueryHandler {
	return GetDeliveryDetailsQueryHandler{db: db}
}

// Handle executes the query. Fails with an ObjectNotFoundError when no
// delivery owns the order id.
func (h GetDeliveryDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryDetailsQuery,
) (GetDeliveryDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			vendor_id,
			dest_latitude,
			dest_longitude,
			status,
			courier_id,
			rating,
			issue,
			ready_at,
			picked_up_at,
			delivered_at
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	var (
		customerID, vendorID string
		latitude, longitude  float64
		status               string
		courierID            sql.NullString
		rating               sql.NullInt64
		issue                sql.NullString
		readyAt              sql.NullTime
		pickedUpAt           sql.NullTime
		deliveredAt          sql.NullTime
	)

	err := row.Scan(
		&customerID,
		&vendorID,
		&latitude,
		&longitude,
		&status,
		&courierID,
		&rating,
		&issue,
		&readyAt,
		&pickedUpAt,
		&deliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryDetailsQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetDeliveryDetailsQueryResponse{}, err
	}

	resp := GetDeliveryDetailsQueryResponse{
		OrderID: query.OrderID(),
		Status:  status,
	}

	if resp.CustomerID, err = kernel.UUIDFromString(customerID); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	if resp.VendorID, err = kernel.UUIDFromString(vendorID); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	if resp.Destination, err = kernel.NewLocation(latitude, longitude); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}

	if courierID.Valid {
		id, idErr := kernel.UUIDFromString(courierID.String)
		if idErr != nil {
			return GetDeliveryDetailsQueryResponse{}, idErr
		}
		resp.CourierID = &id
	}

	if rating.Valid {
		value := int(rating.Int64)
		resp.Rating = &value
	}

	if issue.Valid {
		resp.Issue = &issue.String
	}

	resp.ReadyAt = nullableTime(readyAt)
	resp.PickedUpAt = nullableTime(pickedUpAt)
	resp.DeliveredAt = nullableTime(deliveredAt)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
