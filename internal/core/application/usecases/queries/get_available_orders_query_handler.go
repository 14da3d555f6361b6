package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// GetAvailableOrdersQueryHandler lists the orders a courier may take. It
// loads the awaiting deliveries and the vendor roster through the
// repositories and lets the availability service decide, so the read uses
// exactly the same rules as the assign-any command.
type GetAvailableOrdersQueryHandler struct {
	deliveries   ports.DeliveryRepository
	vendors      ports.VendorRepository
	availability services.OrderAvailabilityService
}

// NewGetAvailableOrdersQueryHandler creates a handler for availability
// queries.
func NewGetAvailableOrdersQueryHandler(
	deliveries ports.DeliveryRepository,
	vendors ports.VendorRepository,
) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{
		deliveries:   deliveries,
		vendors:      vendors,
		availability: services.NewOrderAvailabilityService(),
	}
}

// Handle executes the query. A courier with nothing available gets an
// empty slice, not an error.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	awaiting, err := h.deliveries.GetAllAwaitingCourier(ctx)
	if err != nil {
		return nil, err
	}

	vendors, err := h.vendors.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	available, err := h.availability.AvailableOrders(query.CourierID(), awaiting, vendors)
	if err != nil {
		return nil, err
	}

	byOrderID := make(map[kernel.UUID]*delivery.Delivery, len(awaiting))
	for _, d := range awaiting {
		byOrderID[d.OrderID()] = d
	}

	responses := make([]GetAvailableOrdersQueryResponse, 0, len(available))
	for _, orderID := range available {
		d := byOrderID[orderID]
		responses = append(responses, GetAvailableOrdersQueryResponse{
			OrderID:     orderID,
			VendorID:    d.Order().VendorID(),
			Destination: d.Order().Destination(),
		})
	}

	return responses, nil
}
