package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order and subtracts its load from its module.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.ExpectedVersion() > 0 {
		if err = o.CheckVersion(cmd.ExpectedVersion()); err != nil {
			return err
		}
	}

	loads := newModuleLoads(uow.ModuleRepository())
	if err = loads.remove(ctx, o); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return err
	}

	if err = loads.save(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
