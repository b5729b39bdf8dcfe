// Package http exposes the dispatch use cases over a JSON API served by echo.
package http

import (
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/openapi"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/notifications"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var _ openapi.ServerInterface = (*Server)(nil)

// Handlers groups the use case handlers the API delegates to.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeObservation commands.ChangeObservationCommandHandler
	AssignVehicle     commands.AssignVehicleCommandHandler
	UnassignVehicle   commands.UnassignVehicleCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
	ToggleFavourite   commands.ToggleFavouriteCommandHandler

	// Query handlers
	ListOrders         queries.ListOrdersQueryHandler
	GetUnassigned      queries.GetUnassignedOrdersQueryHandler
	GetOrderDetails    queries.GetOrderDetailsQueryHandler
	ListVehicles       queries.ListVehiclesQueryHandler
	GetVehicleDetails  queries.GetVehicleDetailsQueryHandler
	GetVehicleSchedule queries.GetVehicleScheduleQueryHandler
}

// Server implements openapi.ServerInterface.
// It translates wire types to commands and queries and back.
type Server struct {
	handlers Handlers
	feed     *notifications.Feed
	events   ports.EventSubscriber
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewServer creates a new HTTP server over the given handlers. The feed backs
// the notification list and events backs the notification stream.
func NewServer(
	handlers Handlers,
	feed *notifications.Feed,
	events ports.EventSubscriber,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		feed:     feed,
		events:   events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "HTTPServer"),
	}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params openapi.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		deref(params.UnassignedOnly),
		deref(params.Search),
		deref(params.Sort),
		deref(params.Order),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body openapi.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, openapi.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(commands.NewOrderInput{
		OrderID:      deref(body.Id),
		Weight:       body.Weight,
		Address:      body.Destination.Address,
		City:         body.Destination.City,
		Country:      body.Destination.Country,
		PostalCode:   body.Destination.PostalCode,
		Latitude:     body.Destination.Coordinates.Latitude,
		Longitude:    body.Destination.Coordinates.Longitude,
		Date:         body.Date,
		Observations: body.Observations,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+cmd.OrderID().String())
	return ctx.JSON(http.StatusCreated, openapi.Message{Message: "Order created"})
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetUnassigned.Handle(ctx.Request().Context(), queries.NewGetUnassignedOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// ChangeObservation handles PUT /api/v1/orders/{id}/observations.
// A null or absent observations field clears the text.
func (s *Server) ChangeObservation(ctx echo.Context, id string) error {
	var body openapi.ObservationUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, openapi.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeObservationCommand(id, body.Observations)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.ChangeObservation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openapi.Message{Message: "Observation saved"})
}

// AssignVehicle handles POST /api/v1/orders/{id}/assignment.
func (s *Server) AssignVehicle(ctx echo.Context, id string) error {
	var body openapi.AssignmentRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, openapi.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignVehicleCommand(id, body.Plate)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AssignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openapi.Message{Message: "Vehicle assigned"})
}

// UnassignVehicle handles DELETE /api/v1/orders/{id}/assignment.
func (s *Server) UnassignVehicle(ctx echo.Context, id string, params openapi.UnassignVehicleParams) error {
	cmd, err := commands.NewUnassignVehicleCommand(id, params.Plate)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.UnassignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openapi.Message{Message: "Vehicle unassigned"})
}

// CompleteDelivery handles POST /api/v1/orders/{id}/completion.
func (s *Server) CompleteDelivery(ctx echo.Context, id string) error {
	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, openapi.Message{Message: "Delivery completed"})
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	vehicles, err := s.handlers.ListVehicles.Handle(ctx.Request().Context(), queries.NewListVehiclesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]openapi.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = toVehicle(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetVehicle handles GET /api/v1/vehicles/{plate}.
func (s *Server) GetVehicle(ctx echo.Context, plate string) error {
	query, err := queries.NewGetVehicleDetailsQuery(plate)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetVehicleDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toVehicle(view))
}

// GetVehicleSchedule handles GET /api/v1/vehicles/{plate}/orders.
func (s *Server) GetVehicleSchedule(ctx echo.Context, plate string, params openapi.GetVehicleScheduleParams) error {
	query, err := queries.NewGetVehicleScheduleQuery(plate, params.Date.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.GetVehicleSchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ToggleFavourite handles POST /api/v1/vehicles/{plate}/favourite.
func (s *Server) ToggleFavourite(ctx echo.Context, plate string) error {
	cmd, err := commands.NewToggleFavouriteCommand(plate)
	if err != nil {
		return s.fail(ctx, err)
	}

	favourite, err := s.handlers.ToggleFavourite.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	message := "Vehicle unmarked as favourite"
	if favourite {
		message = "Vehicle marked as favourite"
	}
	return ctx.JSON(http.StatusOK, openapi.FavouriteResult{Message: message, Favourite: favourite})
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	items := s.feed.List()

	response := make([]openapi.Notification, len(items))
	for i, n := range items {
		response[i] = openapi.Notification{
			Id:           n.ID,
			Type:         n.Type,
			Message:      n.Message,
			OrderId:      n.OrderID,
			VehiclePlate: n.VehiclePlate,
			CreatedAt:    n.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toVehicle(v queries.VehicleView) openapi.Vehicle {
	return openapi.Vehicle{
		Plate:             v.Plate,
		MaxWeightCapacity: v.MaxWeightCapacity,
		AvailableWeight:   v.AvailableWeight,
		Favourite:         v.Favourite,
	}
}

func toOrder(v queries.OrderView) openapi.Order {
	o := openapi.Order{
		Id:     v.ID,
		Weight: v.Weight,
		Destination: openapi.Destination{
			Address:    v.Destination.Address,
			City:       v.Destination.City,
			Country:    v.Destination.Country,
			PostalCode: v.Destination.PostalCode,
			Coordinates: openapi.Coordinates{
				Latitude:  v.Destination.Latitude,
				Longitude: v.Destination.Longitude,
			},
		},
		Date:         v.Date,
		Observations: v.Observations,
		VehiclePlate: v.VehiclePlate,
		Completed:    v.Completed,
		Status:       v.Status,
	}
	if v.Vehicle != nil {
		vehicle := toVehicle(*v.Vehicle)
		o.Vehicle = &vehicle
	}
	return o
}

func toOrders(views []queries.OrderView) []openapi.Order {
	response := make([]openapi.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
