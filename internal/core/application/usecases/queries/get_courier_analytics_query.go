package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCourierAnalyticsQueryIsNotConstructed = errors.New(
	"GetCourierAnalyticsQuery must be created via NewGetCourierAnalyticsQuery constructor",
)

// GetCourierAnalyticsQuery retrieves aggregate delivery statistics for a
// courier: workload, completions, reported issues, and average rating.
type GetCourierAnalyticsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierAnalyticsQuery creates an analytics query for the given
// courier.
func NewGetCourierAnalyticsQuery(courierID kernel.UUID) (GetCourierAnalyticsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierAnalyticsQuery{}, err
	}

	return GetCourierAnalyticsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierAnalyticsQueryIsNotConstructed)
}

// CourierID returns the identifier of the queried courier.
func (q GetCourierAnalyticsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierAnalyticsQueryResponse aggregates a courier's delivery record.
// AverageRating is nil while none of the courier's deliveries is rated.
type GetCourierAnalyticsQueryResponse struct {
	CourierID       kernel.UUID
	TotalDeliveries int64
	Completed       int64
	Issues          int64
	AverageRating   *float64
}
