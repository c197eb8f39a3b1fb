package cmd

import (
	"log/slog"

	httpin "workload/internal/adapters/in/http"
	"workload/internal/adapters/out/postgres"
	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/application/usecases/queries"
	"workload/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) moduleUoW() commands.ModuleUoWFactory {
	return FuncModuleUoWFactory(func() commands.ModuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreatePatchOrderCommandHandler() commands.PatchOrderCommandHandler {
	return commands.NewPatchOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSetOrderProgressCommandHandler() commands.SetOrderProgressCommandHandler {
	return commands.NewSetOrderProgressCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateIncrementOrderProgressCommandHandler() commands.IncrementOrderProgressCommandHandler {
	return commands.NewIncrementOrderProgressCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignOrderModuleCommandHandler() commands.AssignOrderModuleCommandHandler {
	return commands.NewAssignOrderModuleCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateModuleCommandHandler() commands.CreateModuleCommandHandler {
	return commands.NewCreateModuleCommandHandler(c.moduleUoW())
}

func (c *CompositionRoot) CreateUpdateModuleCommandHandler() commands.UpdateModuleCommandHandler {
	return commands.NewUpdateModuleCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSetModuleHeadcountCommandHandler() commands.SetModuleHeadcountCommandHandler {
	return commands.NewSetModuleHeadcountCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateReconcileModuleLoadsCommandHandler() commands.ReconcileModuleLoadsCommandHandler {
	return commands.NewReconcileModuleLoadsCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByOpQueryHandler() queries.GetOrderByOpQueryHandler {
	return queries.NewGetOrderByOpQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByModuleQueryHandler() queries.GetOrdersByModuleQueryHandler {
	return queries.NewGetOrdersByModuleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByPlantEntryDateRangeQueryHandler() queries.GetOrdersByPlantEntryDateRangeQueryHandler {
	return queries.NewGetOrdersByPlantEntryDateRangeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetModuleQueryHandler() queries.GetModuleQueryHandler {
	return queries.NewGetModuleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListModulesQueryHandler() queries.ListModulesQueryHandler {
	return queries.NewListModulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportModuleWorkloadQueryHandler() queries.ExportModuleWorkloadQueryHandler {
	return queries.NewExportModuleWorkloadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:            c.CreateCreateOrderCommandHandler(),
			UpdateOrder:            c.CreateUpdateOrderCommandHandler(),
			PatchOrder:             c.CreatePatchOrderCommandHandler(),
			SetOrderProgress:       c.CreateSetOrderProgressCommandHandler(),
			IncrementOrderProgress: c.CreateIncrementOrderProgressCommandHandler(),
			DeleteOrder:            c.CreateDeleteOrderCommandHandler(),
			AssignOrderModule:      c.CreateAssignOrderModuleCommandHandler(),
			CreateModule:           c.CreateCreateModuleCommandHandler(),
			UpdateModule:           c.CreateUpdateModuleCommandHandler(),
			SetModuleHeadcount:     c.CreateSetModuleHeadcountCommandHandler(),
			ReconcileModuleLoads:   c.CreateReconcileModuleLoadsCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:             c.CreateGetOrderQueryHandler(),
			GetOrderByOp:         c.CreateGetOrderByOpQueryHandler(),
			GetOrdersByModule:    c.CreateGetOrdersByModuleQueryHandler(),
			GetOrdersByDateRange: c.CreateGetOrdersByPlantEntryDateRangeQueryHandler(),
			SearchOrders:         c.CreateSearchOrdersQueryHandler(),
			ListOrders:           c.CreateListOrdersQueryHandler(),
			GetModule:            c.CreateGetModuleQueryHandler(),
			ListModules:          c.CreateListModulesQueryHandler(),
			ExportWorkload:       c.CreateExportModuleWorkloadQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileModuleLoadsCommandHandler(), c.cfg.ReconcileSchedule, c.logger)
}

type FuncModuleUoWFactory func() commands.ModuleUoW

func (f FuncModuleUoWFactory) Create() commands.ModuleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
