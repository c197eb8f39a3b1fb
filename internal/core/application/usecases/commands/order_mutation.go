package commands

import (
	"context"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
)

// orderMutation is the write path shared by every command that changes an existing order:
// load, check the caller's version token, mutate, re-check op uniqueness if it moved,
// recompute load and module aggregates, persist order and modules, commit.
type orderMutation struct {
	orderID         kernel.UUID
	expectedVersion int64
	mutate          func(o *order.Order) error
}

func (m orderMutation) run(ctx context.Context, uowFactory UoWFactory) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, m.orderID)
	if err != nil {
		return err
	}

	if m.expectedVersion > 0 {
		if err = o.CheckVersion(m.expectedVersion); err != nil {
			return err
		}
	}

	prevOp, prevModuleID, prevLoad := o.Op(), o.ModuleID(), o.LoadDays()

	if err = m.mutate(o); err != nil {
		return err
	}

	if o.Op() != prevOp {
		id := o.ID()
		if err = ensureOpIsFree(ctx, orderRepo, o.Op(), &id); err != nil {
			return err
		}
	}

	loads := newModuleLoads(uow.ModuleRepository())
	if err = loads.settle(ctx, o, prevModuleID, prevLoad); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = loads.save(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
