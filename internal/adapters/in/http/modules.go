package http

import (
	"fmt"
	"net/http"
	"strings"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateModule handles POST /api/v1/modules.
func (s *Server) CreateModule(ctx echo.Context) error {
	var body servers.NewModule
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	moduleID := kernel.NewUUID()
	cmd, err := commands.NewCreateModuleCommand(moduleID, body.Name, deref(body.Description), deref(body.NumPersons))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateModule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondModule(ctx, http.StatusCreated, moduleID)
}

// ListModules handles GET /api/v1/modules.
func (s *Server) ListModules(ctx echo.Context, params servers.ListModulesParams) error {
	var (
		views []queries.ModuleView
		err   error
	)
	if name := strings.TrimSpace(deref(params.Name)); name != "" {
		views, err = s.queries.ListModules.FindByName(ctx.Request().Context(), queries.NewFindModulesByNameQuery(name))
	} else {
		views, err = s.queries.ListModules.Handle(ctx.Request().Context(), queries.NewListModulesQuery())
	}
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIModules(views))
}

// GetModule handles GET /api/v1/modules/{moduleId}.
func (s *Server) GetModule(ctx echo.Context, moduleId openapi_types.UUID) error {
	id, err := toKernelUUID(moduleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondModule(ctx, http.StatusOK, id)
}

// UpdateModule handles PUT /api/v1/modules/{moduleId}.
func (s *Server) UpdateModule(ctx echo.Context, moduleId openapi_types.UUID, params servers.UpdateModuleParams) error {
	var body servers.ModuleUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(moduleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateModuleCommand(id, body.Name, body.Description, body.NumPersons, versionOf(params.Version))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateModule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondModule(ctx, http.StatusOK, id)
}

// SetModuleHeadcount handles PUT /api/v1/modules/{moduleId}/persons.
func (s *Server) SetModuleHeadcount(ctx echo.Context, moduleId openapi_types.UUID, params servers.SetModuleHeadcountParams) error {
	id, err := toKernelUUID(moduleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetModuleHeadcountCommand(id, params.NumPersons, versionOf(params.Version))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.SetModuleHeadcount.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondModule(ctx, http.StatusOK, id)
}

// GetModuleOrders handles GET /api/v1/modules/{moduleId}/orders.
func (s *Server) GetModuleOrders(ctx echo.Context, moduleId openapi_types.UUID) error {
	id, err := toKernelUUID(moduleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrdersByModuleQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.GetOrdersByModule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrders(views))
}

// AssignOrderToModule handles PUT /api/v1/modules/{moduleId}/orders/{orderId}.
func (s *Server) AssignOrderToModule(
	ctx echo.Context,
	moduleId openapi_types.UUID,
	orderId openapi_types.UUID,
	params servers.AssignOrderToModuleParams,
) error {
	mid, err := toKernelUUID(moduleId)
	if err != nil {
		return s.fail(ctx, err)
	}
	oid, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAssignOrderModuleCommand(oid, &mid, versionOf(params.Version), actorOf(params.XActor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.AssignOrderModule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx, http.StatusOK, oid)
}

// ReconcileModuleLoads handles POST /api/v1/modules/reconcile.
func (s *Server) ReconcileModuleLoads(ctx echo.Context) error {
	cmd, err := commands.NewReconcileModuleLoadsCommand()
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.commands.ReconcileModuleLoads.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIReconcileReport(result))
}

// ExportWorkload handles GET /api/v1/reports/workload.xlsx.
func (s *Server) ExportWorkload(ctx echo.Context) error {
	report, err := s.queries.ExportWorkload.Handle(ctx.Request().Context(), queries.NewExportModuleWorkloadQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return ctx.Blob(http.StatusOK, queries.XLSXMediaType, report.Content)
}

func (s *Server) respondModule(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetModuleQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetModule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, toAPIModule(view))
}
