package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	UnassignedOnly *bool   `form:"unassignedOnly,omitempty" json:"unassignedOnly,omitempty"`
	Search         *string `form:"search,omitempty" json:"search,omitempty"`
	Sort           *string `form:"sort,omitempty" json:"sort,omitempty"`
	Order          *string `form:"order,omitempty" json:"order,omitempty"`
}

// UnassignVehicleParams defines parameters for UnassignVehicle.
type UnassignVehicleParams struct {
	Plate string `form:"plate" json:"plate"`
}

// GetVehicleScheduleParams defines parameters for GetVehicleSchedule.
type GetVehicleScheduleParams struct {
	Date openapi_types.Date `form:"date" json:"date"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/unassigned)
	GetUnassignedOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// (PUT /api/v1/orders/{id}/observations)
	ChangeObservation(ctx echo.Context, id string) error
	// (POST /api/v1/orders/{id}/assignment)
	AssignVehicle(ctx echo.Context, id string) error
	// (DELETE /api/v1/orders/{id}/assignment)
	UnassignVehicle(ctx echo.Context, id string, params UnassignVehicleParams) error
	// (POST /api/v1/orders/{id}/completion)
	CompleteDelivery(ctx echo.Context, id string) error
	// (GET /api/v1/vehicles)
	ListVehicles(ctx echo.Context) error
	// (GET /api/v1/vehicles/{plate})
	GetVehicle(ctx echo.Context, plate string) error
	// (GET /api/v1/vehicles/{plate}/orders)
	GetVehicleSchedule(ctx echo.Context, plate string, params GetVehicleScheduleParams) error
	// (POST /api/v1/vehicles/{plate}/favourite)
	ToggleFavourite(ctx echo.Context, plate string) error
	// (GET /api/v1/notifications)
	ListNotifications(ctx echo.Context) error
	// (GET /api/v1/notifications/ws)
	StreamNotifications(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func pathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", badParam(name, err)
	}
	return value, nil
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "unassignedOnly", ctx.QueryParams(), &params.UnassignedOnly); err != nil {
		return badParam("unassignedOnly", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search); err != nil {
		return badParam("search", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "sort", ctx.QueryParams(), &params.Sort); err != nil {
		return badParam("sort", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order); err != nil {
		return badParam("order", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetUnassignedOrders(ctx echo.Context) error {
	return w.Handler.GetUnassignedOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeObservation(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.ChangeObservation(ctx, id)
}

func (w *ServerInterfaceWrapper) AssignVehicle(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AssignVehicle(ctx, id)
}

func (w *ServerInterfaceWrapper) UnassignVehicle(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}

	var params UnassignVehicleParams
	if err := runtime.BindQueryParameter("form", true, true, "plate", ctx.QueryParams(), &params.Plate); err != nil {
		return badParam("plate", err)
	}

	return w.Handler.UnassignVehicle(ctx, id, params)
}

func (w *ServerInterfaceWrapper) CompleteDelivery(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.CompleteDelivery(ctx, id)
}

func (w *ServerInterfaceWrapper) ListVehicles(ctx echo.Context) error {
	return w.Handler.ListVehicles(ctx)
}

func (w *ServerInterfaceWrapper) GetVehicle(ctx echo.Context) error {
	plate, err := pathParam(ctx, "plate")
	if err != nil {
		return err
	}
	return w.Handler.GetVehicle(ctx, plate)
}

func (w *ServerInterfaceWrapper) GetVehicleSchedule(ctx echo.Context) error {
	plate, err := pathParam(ctx, "plate")
	if err != nil {
		return err
	}

	var params GetVehicleScheduleParams
	if err := runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date); err != nil {
		return badParam("date", err)
	}

	return w.Handler.GetVehicleSchedule(ctx, plate, params)
}

func (w *ServerInterfaceWrapper) ToggleFavourite(ctx echo.Context) error {
	plate, err := pathParam(ctx, "plate")
	if err != nil {
		return err
	}
	return w.Handler.ToggleFavourite(ctx, plate)
}

func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	return w.Handler.ListNotifications(ctx)
}

func (w *ServerInterfaceWrapper) StreamNotifications(ctx echo.Context) error {
	return w.Handler.StreamNotifications(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders", w.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/unassigned", w.GetUnassignedOrders)
	router.GET(baseURL+"/api/v1/orders/:id", w.GetOrder)
	router.PUT(baseURL+"/api/v1/orders/:id/observations", w.ChangeObservation)
	router.POST(baseURL+"/api/v1/orders/:id/assignment", w.AssignVehicle)
	router.DELETE(baseURL+"/api/v1/orders/:id/assignment", w.UnassignVehicle)
	router.POST(baseURL+"/api/v1/orders/:id/completion", w.CompleteDelivery)
	router.GET(baseURL+"/api/v1/vehicles", w.ListVehicles)
	router.GET(baseURL+"/api/v1/vehicles/:plate", w.GetVehicle)
	router.GET(baseURL+"/api/v1/vehicles/:plate/orders", w.GetVehicleSchedule)
	router.POST(baseURL+"/api/v1/vehicles/:plate/favourite", w.ToggleFavourite)
	router.GET(baseURL+"/api/v1/notifications", w.ListNotifications)
	router.GET(baseURL+"/api/v1/notifications/ws", w.StreamNotifications)
}
