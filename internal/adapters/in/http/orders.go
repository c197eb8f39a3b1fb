package http

import (
	"net/http"
	"strings"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := toCreateOrderCommand(orderID, body, actorOf(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// ListOrders handles GET /api/v1/orders. A non-blank q narrows the list to matching orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var (
		views []queries.OrderView
		err   error
	)
	if q := strings.TrimSpace(deref(params.Q)); q != "" {
		views, err = s.queries.SearchOrders.Handle(ctx.Request().Context(), queries.NewSearchOrdersQuery(q))
	} else {
		views, err = s.queries.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(views))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// GetOrderByOp handles GET /api/v1/orders/by-op/{op}.
func (s *Server) GetOrderByOp(ctx echo.Context, op string) error {
	query, err := queries.NewGetOrderByOpQuery(op)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetOrderByOp.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrder(view))
}

// GetOrdersByDateRange handles GET /api/v1/orders/by-date-range.
func (s *Server) GetOrdersByDateRange(ctx echo.Context, params servers.GetOrdersByDateRangeParams) error {
	query, err := queries.NewGetOrdersByPlantEntryDateRangeQuery(params.StartDate.Time, params.EndDate.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.GetOrdersByDateRange.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(views))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderParams) error {
	var body servers.OrderUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	changes, err := toOrderChanges(body)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateOrderCommand(id, versionOf(params.Version), actorOf(params.XActor), changes...)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// PatchOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) PatchOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.PatchOrderParams) error {
	var body servers.OrderPatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewPatchOrderCommand(id, versionOf(params.Version), actorOf(params.XActor), body)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.PatchOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, id)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.DeleteOrderParams) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteOrderCommand(id, versionOf(params.Version))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderProgress handles PUT /api/v1/orders/{orderId}/made.
func (s *Server) SetOrderProgress(ctx echo.Context, orderId openapi_types.UUID, params servers.SetOrderProgressParams) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetOrderProgressCommand(id, params.Value, versionOf(params.Version), actorOf(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.SetOrderProgress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// IncrementOrderProgress handles PATCH /api/v1/orders/{orderId}/progress.
func (s *Server) IncrementOrderProgress(ctx echo.Context, orderId openapi_types.UUID, params servers.IncrementOrderProgressParams) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewIncrementOrderProgressCommand(id, params.Delta, versionOf(params.Version), actorOf(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.IncrementOrderProgress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// respondOrder answers with the stored state of the order after a write.
func (s *Server) respondOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toAPIOrder(view))
}
