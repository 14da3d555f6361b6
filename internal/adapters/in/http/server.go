// Package http contains the inbound HTTP adapter: an echo server exposing
// the order, delivery, vendor, and courier operations and translating
// domain errors to HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/auth"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/vendor"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers served over HTTP.
type Handlers struct {
	CreateDelivery        commands.CreateDeliveryCommandHandler
	CreateVendor          commands.CreateVendorCommandHandler
	SetOrderStatus        commands.SetOrderStatusCommandHandler
	AssignOrder           commands.AssignOrderCommandHandler
	AssignAnyOrder        commands.AssignAnyOrderCommandHandler
	UpdateDeliveryZone    commands.UpdateDeliveryZoneCommandHandler
	SaveRating            commands.SaveRatingCommandHandler
	UpdateDeliveryDetails commands.UpdateDeliveryDetailsCommandHandler
	AddVendorCourier      commands.AddVendorCourierCommandHandler

	GetOrderStatus      queries.GetOrderStatusQueryHandler
	GetAvailableOrders  queries.GetAvailableOrdersQueryHandler
	GetDeliveryDetails  queries.GetDeliveryDetailsQueryHandler
	GetDeliveryZone     queries.GetDeliveryZoneQueryHandler
	GetRating           queries.GetRatingQueryHandler
	GetCourierAnalytics queries.GetCourierAnalyticsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
// Every endpoint resolves the caller from the authorizationId query
// parameter and checks the matching permission predicate before touching
// any handler: a missing id yields 401, a denial 403.
type Server struct {
	handlers    Handlers
	permissions auth.PermissionService
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers, permissions auth.PermissionService) *Server {
	return &Server{
		handlers:    handlers,
		permissions: permissions,
	}
}

// RegisterRoutes binds all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/available", s.GetAvailableOrders)
	api.POST("/orders/assign", s.AssignAnyOrder)
	api.GET("/orders/:orderId/status", s.GetOrderStatus)
	api.PUT("/orders/:orderId/status", s.SetOrderStatus)
	api.POST("/orders/:orderId/assign", s.AssignOrder)

	api.GET("/deliveries/:orderId", s.GetDeliveryDetails)
	api.PATCH("/deliveries/:orderId", s.UpdateDeliveryDetails)
	api.GET("/deliveries/:orderId/rating", s.GetRating)
	api.PUT("/deliveries/:orderId/rating", s.SaveRating)

	api.POST("/vendors", s.CreateVendor)
	api.GET("/vendors/:vendorId/zone", s.GetDeliveryZone)
	api.PUT("/vendors/:vendorId/zone", s.UpdateDeliveryZone)
	api.POST("/vendors/:vendorId/couriers", s.AddVendorCourier)

	api.GET("/couriers/:courierId/analytics", s.GetCourierAnalytics)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanCreateDelivery(ctx.Request().Context(), userID, customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}
	destination, err := kernel.NewLocation(req.Destination.Latitude, req.Destination.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderID, customerID, vendorID, destination)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrderStatus handles GET /api/v1/orders/:orderId/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanViewDeliveryDetails(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.handlers.GetOrderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID: resp.OrderID.String(),
		Status:  resp.Status,
	})
}

// SetOrderStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	actorID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanUpdateDeliveryDetails(ctx.Request().Context(), actorID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req SetOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, actorID, req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignOrder handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanUpdateDeliveryDetails(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignedOrderResponse{
		OrderID:   orderID.String(),
		CourierID: courierID.String(),
	})
}

// AssignAnyOrder handles POST /api/v1/orders/assign.
func (s *Server) AssignAnyOrder(ctx echo.Context) error {
	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanTakeAvailableOrders(ctx.Request().Context(), userID, courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	cmd, err := commands.NewAssignAnyOrderCommand(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := s.handlers.AssignAnyOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignedOrderResponse{
		OrderID:   orderID.String(),
		CourierID: courierID.String(),
	})
}

// GetAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.QueryParam("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanTakeAvailableOrders(ctx.Request().Context(), userID, courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetAvailableOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	available, err := s.handlers.GetAvailableOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]AvailableOrderModel, len(available))
	for i, entry := range available {
		response[i] = AvailableOrderModel{
			OrderID:  entry.OrderID.String(),
			VendorID: entry.VendorID.String(),
			Destination: LocationModel{
				Latitude:  entry.Destination.Latitude(),
				Longitude: entry.Destination.Longitude(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryDetails handles GET /api/v1/deliveries/:orderId.
func (s *Server) GetDeliveryDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanViewDeliveryDetails(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetDeliveryDetailsQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.handlers.GetDeliveryDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	details := DeliveryDetailsResponse{
		OrderID:    resp.OrderID.String(),
		CustomerID: resp.CustomerID.String(),
		VendorID:   resp.VendorID.String(),
		Destination: LocationModel{
			Latitude:  resp.Destination.Latitude(),
			Longitude: resp.Destination.Longitude(),
		},
		Status:      resp.Status,
		Rating:      resp.Rating,
		Issue:       resp.Issue,
		ReadyAt:     resp.ReadyAt,
		PickedUpAt:  resp.PickedUpAt,
		DeliveredAt: resp.DeliveredAt,
	}
	if resp.CourierID != nil {
		courierID := resp.CourierID.String()
		details.CourierID = &courierID
	}

	return ctx.JSON(http.StatusOK, details)
}

// UpdateDeliveryDetails handles PATCH /api/v1/deliveries/:orderId.
func (s *Server) UpdateDeliveryDetails(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanUpdateDeliveryDetails(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req UpdateDeliveryDetailsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryDetailsCommand(orderID, req.Issue, req.ReadyAt, req.PickedUpAt, req.DeliveredAt)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateDeliveryDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetRating handles GET /api/v1/deliveries/:orderId/rating.
func (s *Server) GetRating(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanViewDeliveryDetails(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetRatingQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.handlers.GetRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RatingResponse{
		OrderID: resp.OrderID.String(),
		Rating:  resp.Rating,
	})
}

// SaveRating handles PUT /api/v1/deliveries/:orderId/rating.
func (s *Server) SaveRating(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanChangeOrderRating(ctx.Request().Context(), userID, orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req SaveRatingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveRatingCommand(orderID, req.Rating)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SaveRating.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateVendor handles POST /api/v1/vendors.
func (s *Server) CreateVendor(ctx echo.Context) error {
	var req CreateVendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanUpdateVendorDeliveryZone(ctx.Request().Context(), userID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	cmd, err := commands.NewCreateVendorCommand(vendorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateVendor.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDeliveryZone handles GET /api/v1/vendors/:vendorId/zone.
func (s *Server) GetDeliveryZone(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanUpdateVendorDeliveryZone(ctx.Request().Context(), userID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetDeliveryZoneQuery(vendorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.handlers.GetDeliveryZone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryZoneResponse{
		VendorID: resp.VendorID.String(),
		ZoneKm:   resp.ZoneKm,
	})
}

// UpdateDeliveryZone handles PUT /api/v1/vendors/:vendorId/zone.
func (s *Server) UpdateDeliveryZone(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanUpdateVendorDeliveryZone(ctx.Request().Context(), userID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req UpdateDeliveryZoneRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryZoneCommand(vendorID, req.ZoneKm)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateDeliveryZone.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddVendorCourier handles POST /api/v1/vendors/:vendorId/couriers.
func (s *Server) AddVendorCourier(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	allowed, err := s.permissions.CanUpdateVendorDeliveryZone(ctx.Request().Context(), userID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	var req AddVendorCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAddVendorCourierCommand(vendorID, courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AddVendorCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCourierAnalytics handles GET /api/v1/couriers/:courierId/analytics.
func (s *Server) GetCourierAnalytics(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	userID, ok := authorizationID(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	allowed, err := s.permissions.CanViewCourierAnalytics(ctx.Request().Context(), userID, courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	if !allowed {
		return forbidden(ctx)
	}

	query, err := queries.NewGetCourierAnalyticsQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.handlers.GetCourierAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierAnalyticsResponse{
		CourierID:       resp.CourierID.String(),
		TotalDeliveries: resp.TotalDeliveries,
		Completed:       resp.Completed,
		Issues:          resp.Issues,
		AverageRating:   resp.AverageRating,
	})
}

// authorizationID extracts the caller's id from the authorizationId query
// parameter.
func authorizationID(ctx echo.Context) (kernel.UUID, bool) {
	id, err := kernel.UUIDFromString(ctx.QueryParam("authorizationId"))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid authorizationId",
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: "Operation not permitted for this caller",
	})
}

// errorJSON maps domain errors to HTTP statuses.
func errorJSON(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoAvailableOrders):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, delivery.ErrCourierAlreadyAssigned),
		errors.Is(err, delivery.ErrRatingAlreadySet),
		errors.Is(err, vendor.ErrCourierAlreadyInPool),
		errors.Is(err, commands.ErrCourierBoundToAnotherVendor):
		status = http.StatusConflict
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, delivery.ErrOrderNotDelivered),
		errors.Is(err, vendor.ErrNoCouriers):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrMicroserviceCommunication):
		status = http.StatusBadGateway
	case errors.Is(err, order.ErrInvalidStatusValue),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
