package http

import (
	"log/slog"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/generated/servers"
)

const defaultActor = "system"

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write side use cases served over HTTP.
type CommandHandlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrder            commands.UpdateOrderCommandHandler
	PatchOrder             commands.PatchOrderCommandHandler
	SetOrderProgress       commands.SetOrderProgressCommandHandler
	IncrementOrderProgress commands.IncrementOrderProgressCommandHandler
	DeleteOrder            commands.DeleteOrderCommandHandler
	AssignOrderModule      commands.AssignOrderModuleCommandHandler
	CreateModule           commands.CreateModuleCommandHandler
	UpdateModule           commands.UpdateModuleCommandHandler
	SetModuleHeadcount     commands.SetModuleHeadcountCommandHandler
	ReconcileModuleLoads   commands.ReconcileModuleLoadsCommandHandler
}

// QueryHandlers groups the read side use cases served over HTTP.
type QueryHandlers struct {
	GetOrder             queries.GetOrderQueryHandler
	GetOrderByOp         queries.GetOrderByOpQueryHandler
	GetOrdersByModule    queries.GetOrdersByModuleQueryHandler
	GetOrdersByDateRange queries.GetOrdersByPlantEntryDateRangeQueryHandler
	SearchOrders         queries.SearchOrdersQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	GetModule            queries.GetModuleQueryHandler
	ListModules          queries.ListModulesQueryHandler
	ExportWorkload       queries.ExportModuleWorkloadQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http_server"),
	}
}

func actorOf(header *servers.Actor) string {
	if header == nil || *header == "" {
		return defaultActor
	}
	return *header
}

func versionOf(v *servers.Version) int64 {
	if v == nil {
		return 0
	}
	return *v
}
