package commands

import (
	"context"
	"errors"
	"fmt"

	"workload/internal/core/domain/model/kernel"
)

// ModuleLoadDrift describes a module whose stored aggregate did not match its orders.
type ModuleLoadDrift struct {
	ModuleID      kernel.UUID
	Name          string
	Stored        kernel.LoadDays
	Actual        kernel.LoadDays
	OrdersUpdated int
}

type ReconcileModuleLoadsResult struct {
	Checked int
	Drifts  []ModuleLoadDrift
}

// ReconcileModuleLoadsCommandHandler rebuilds module aggregates from scratch. Each module is
// reconciled in its own transaction, so one failing module does not hold back the others.
type ReconcileModuleLoadsCommandHandler struct {
	uowFactory UoWFactory
}

func NewReconcileModuleLoadsCommandHandler(uowFactory UoWFactory) ReconcileModuleLoadsCommandHandler {
	return ReconcileModuleLoadsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReconcileModuleLoadsCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileModuleLoadsCommand,
) (ReconcileModuleLoadsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcileModuleLoadsResult{}, err
	}

	modules, err := h.uowFactory.Create().ModuleRepository().GetAll(ctx)
	if err != nil {
		return ReconcileModuleLoadsResult{}, err
	}

	var (
		result   ReconcileModuleLoadsResult
		failures []error
	)
	for _, m := range modules {
		if err = ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		drift, changed, reconcileErr := h.reconcile(ctx, m.ID())
		if reconcileErr != nil {
			failures = append(failures, fmt.Errorf("module %s: %w", m.ID(), reconcileErr))
			continue
		}
		result.Checked++
		if changed {
			result.Drifts = append(result.Drifts, drift)
		}
	}

	return result, errors.Join(failures...)
}

func (h ReconcileModuleLoadsCommandHandler) reconcile(ctx context.Context, id kernel.UUID) (ModuleLoadDrift, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ModuleLoadDrift{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moduleRepo := uow.ModuleRepository()
	m, err := moduleRepo.Get(ctx, id)
	if err != nil {
		return ModuleLoadDrift{}, false, err
	}

	stored := m.AggregateLoadDays()
	updated, drifted, err := rebalanceModule(ctx, uow.OrderRepository(), m)
	if err != nil {
		return ModuleLoadDrift{}, false, err
	}
	if !drifted && updated == 0 {
		return ModuleLoadDrift{}, false, nil
	}

	if err = moduleRepo.Update(ctx, m); err != nil {
		return ModuleLoadDrift{}, false, err
	}
	if err = uow.Commit(ctx); err != nil {
		return ModuleLoadDrift{}, false, err
	}

	return ModuleLoadDrift{
		ModuleID:      m.ID(),
		Name:          m.Name(),
		Stored:        stored,
		Actual:        m.AggregateLoadDays(),
		OrdersUpdated: updated,
	}, true, nil
}
