package commands

import (
	"context"
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"
	"workload/internal/core/domain/services"
	"workload/internal/core/ports"
	"workload/internal/pkg/errs"
)

// moduleLoads keeps the aggregates of the modules touched by one command in step with the
// orders written in the same unit of work. Modules are loaded once and saved once.
type moduleLoads struct {
	repo       ports.ModuleRepository
	calculator services.LoadCalculator
	aggregator services.ModuleLoadAggregator
	loaded     map[kernel.UUID]*module.Module
	dirty      []*module.Module
}

func newModuleLoads(repo ports.ModuleRepository) *moduleLoads {
	return &moduleLoads{
		repo:       repo,
		calculator: services.NewLoadCalculator(),
		aggregator: services.NewModuleLoadAggregator(),
		loaded:     make(map[kernel.UUID]*module.Module),
	}
}

func (l *moduleLoads) get(ctx context.Context, id *kernel.UUID) (*module.Module, error) {
	if id == nil {
		return nil, nil
	}
	if m, ok := l.loaded[*id]; ok {
		return m, nil
	}

	m, err := l.repo.Get(ctx, *id)
	if err != nil {
		return nil, err
	}
	l.loaded[*id] = m
	return m, nil
}

// previous tolerates a module that no longer exists.
func (l *moduleLoads) previous(ctx context.Context, id *kernel.UUID) (*module.Module, error) {
	m, err := l.get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return m, err
}

func (l *moduleLoads) markDirty(m *module.Module) {
	if m == nil {
		return
	}
	for _, d := range l.dirty {
		if d == m {
			return
		}
	}
	l.dirty = append(l.dirty, m)
}

// settle recomputes the load of o against its current module and moves the difference out of
// the module it referenced before the command (prevModuleID, prevLoad). A current module that
// does not exist fails with errs.ObjectNotFoundError.
func (l *moduleLoads) settle(ctx context.Context, o *order.Order, prevModuleID *kernel.UUID, prevLoad kernel.LoadDays) error {
	current, err := l.get(ctx, o.ModuleID())
	if err != nil {
		return err
	}
	before, err := l.previous(ctx, prevModuleID)
	if err != nil {
		return err
	}

	_, newLoad := l.calculator.Refresh(o, current)

	if sameModule(prevModuleID, o.ModuleID()) {
		if l.aggregator.OnOrderLoadChanged(current, prevLoad, newLoad) {
			l.markDirty(current)
		}
		return nil
	}

	l.aggregator.OnOrderReassigned(before, current, prevLoad, newLoad)
	l.markDirty(before)
	l.markDirty(current)
	return nil
}

// remove takes a deleted order's load out of its module.
func (l *moduleLoads) remove(ctx context.Context, o *order.Order) error {
	m, err := l.previous(ctx, o.ModuleID())
	if err != nil || m == nil {
		return err
	}

	before := m.AggregateLoadDays()
	l.aggregator.OnOrderRemoved(m, o)
	if !before.IsEqual(m.AggregateLoadDays()) {
		l.markDirty(m)
	}
	return nil
}

// save writes every module whose aggregate changed.
func (l *moduleLoads) save(ctx context.Context) error {
	for _, m := range l.dirty {
		if err := l.repo.Update(ctx, m); err != nil {
			return err
		}
	}
	l.dirty = nil
	return nil
}

func sameModule(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func ensureOpIsFree(ctx context.Context, orders ports.OrderRepository, op string, excluding *kernel.UUID) error {
	exists, err := orders.ExistsByOp(ctx, op, excluding)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("op", op)
	}
	return nil
}
