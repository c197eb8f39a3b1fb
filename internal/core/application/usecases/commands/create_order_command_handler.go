package commands

import (
	"context"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates orders. It reconciles quantity and sizes, rejects a
// duplicate op, computes the initial load and adds it to the module aggregate in the same
// transaction as the insert.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Details(), cmd.Quantity(), cmd.SizeBreakdown(), cmd.Actor())
	if err != nil {
		return err
	}
	if id := cmd.ModuleID(); id != nil {
		if err = o.AssignModule(*id); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = ensureOpIsFree(ctx, orderRepo, o.Op(), nil); err != nil {
		return err
	}

	loads := newModuleLoads(uow.ModuleRepository())
	if err = loads.settle(ctx, o, nil, kernel.ZeroLoadDays()); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = loads.save(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
