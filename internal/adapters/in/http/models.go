package http

import "time"

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LocationModel carries a coordinate pair on the wire.
type LocationModel struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderID     string        `json:"orderId"`
	CustomerID  string        `json:"customerId"`
	VendorID    string        `json:"vendorId"`
	Destination LocationModel `json:"destination"`
}

// SetOrderStatusRequest is the body of PUT /api/v1/orders/:orderId/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderStatusResponse is the body of GET /api/v1/orders/:orderId/status.
type OrderStatusResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// AssignOrderRequest carries the courier for both assignment endpoints.
type AssignOrderRequest struct {
	CourierID string `json:"courierId"`
}

// AssignedOrderResponse reports which order an assignment landed on.
type AssignedOrderResponse struct {
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

// AvailableOrderModel is one entry of GET /api/v1/orders/available.
type AvailableOrderModel struct {
	OrderID     string        `json:"orderId"`
	VendorID    string        `json:"vendorId"`
	Destination LocationModel `json:"destination"`
}

// DeliveryDetailsResponse is the body of GET /api/v1/deliveries/:orderId.
type DeliveryDetailsResponse struct {
	OrderID     string        `json:"orderId"`
	CustomerID  string        `json:"customerId"`
	VendorID    string        `json:"vendorId"`
	Destination LocationModel `json:"destination"`
	Status      string        `json:"status"`
	CourierID   *string       `json:"courierId,omitempty"`
	Rating      *int          `json:"rating,omitempty"`
	Issue       *string       `json:"issue,omitempty"`
	ReadyAt     *time.Time    `json:"readyAt,omitempty"`
	PickedUpAt  *time.Time    `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time    `json:"deliveredAt,omitempty"`
}

// UpdateDeliveryDetailsRequest is the body of PATCH
// /api/v1/deliveries/:orderId. Absent fields stay untouched.
type UpdateDeliveryDetailsRequest struct {
	Issue       *string    `json:"issue,omitempty"`
	ReadyAt     *time.Time `json:"readyAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// SaveRatingRequest is the body of PUT /api/v1/deliveries/:orderId/rating.
type SaveRatingRequest struct {
	Rating int `json:"rating"`
}

// RatingResponse is the body of GET /api/v1/deliveries/:orderId/rating.
type RatingResponse struct {
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
}

// CreateVendorRequest is the body of POST /api/v1/vendors.
type CreateVendorRequest struct {
	VendorID string `json:"vendorId"`
}

// UpdateDeliveryZoneRequest is the body of PUT
// /api/v1/vendors/:vendorId/zone.
type UpdateDeliveryZoneRequest struct {
	ZoneKm float64 `json:"zoneKm"`
}

// DeliveryZoneResponse is the body of GET /api/v1/vendors/:vendorId/zone.
type DeliveryZoneResponse struct {
	VendorID string  `json:"vendorId"`
	ZoneKm   float64 `json:"zoneKm"`
}

// AddVendorCourierRequest is the body of POST
// /api/v1/vendors/:vendorId/couriers.
type AddVendorCourierRequest struct {
	CourierID string `json:"courierId"`
}

// CourierAnalyticsResponse is the body of GET
// /api/v1/couriers/:courierId/analytics.
type CourierAnalyticsResponse struct {
	CourierID       string   `json:"courierId"`
	TotalDeliveries int64    `json:"totalDeliveries"`
	Completed       int64    `json:"completed"`
	Issues          int64    `json:"issues"`
	AverageRating   *float64 `json:"averageRating,omitempty"`
}
