package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetCourierAnalyticsQueryHandler aggregates a courier's delivery record
// with a single grouped read over the deliveries table. A courier with no
// deliveries yields an all-zero response rather than an error.
type GetCourierAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierAnalyticsQueryHandler creates a handler for courier
// analytics queries.
func NewGetCourierAnalyticsQueryHandler(db *gorm.DB) GetCourierAnalyticsQueryHandler {
	return GetCourierAnalyticsQueryHandler{db: db}
}

// Handle executes the analytics aggregation.
func (h GetCourierAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierAnalyticsQuery,
) (GetCourierAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierAnalyticsQueryResponse{}, err
	}

	var (
		total     int64
		completed int64
		issues    int64
		avgRating sql.NullFloat64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'DELIVERED'),
			COUNT(issue),
			AVG(rating)
		FROM deliveries
		WHERE courier_id = ?
	`, query.CourierID().String()).Row()

	if err := row.Scan(&total, &completed, &issues, &avgRating); err != nil {
		return GetCourierAnalyticsQueryResponse{}, err
	}

	resp := GetCourierAnalyticsQueryResponse{
		CourierID:       query.CourierID(),
		TotalDeliveries: total,
		Completed:       completed,
		Issues:          issues,
	}

	if avgRating.Valid {
		resp.AverageRating = &avgRating.Float64
	}

	return resp, nil
}
