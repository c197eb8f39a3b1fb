package services

import (
	"fmt"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"
)

// ModuleLoadAggregator keeps Module.AggregateLoadDays equal to the sum of the loadDays of the
// orders referencing the module. It works on loaded aggregates; callers persist the modules it
// reports as changed in the same unit of work as the order write.
type ModuleLoadAggregator struct{}

func NewModuleLoadAggregator() ModuleLoadAggregator {
	return ModuleLoadAggregator{}
}

// OnOrderLoadChanged moves m's aggregate by newLoad - oldLoad. A nil module is ignored.
// It reports whether the aggregate changed.
func (ModuleLoadAggregator) OnOrderLoadChanged(m *module.Module, oldLoad, newLoad kernel.LoadDays) bool {
	if m == nil || oldLoad.IsEqual(newLoad) {
		return false
	}
	before := m.AggregateLoadDays()
	m.RemoveLoad(oldLoad)
	m.AddLoad(newLoad)
	return !before.IsEqual(m.AggregateLoadDays())
}

// OnOrderReassigned removes the order's previous load from oldModule and adds its current load
// to newModule. Either side may be nil. The two loads differ when the modules have different
// headcounts.
func (a ModuleLoadAggregator) OnOrderReassigned(
	oldModule, newModule *module.Module,
	oldLoad, newLoad kernel.LoadDays,
) {
	if oldModule != nil && newModule != nil && oldModule.IsEqual(newModule) {
		a.OnOrderLoadChanged(oldModule, oldLoad, newLoad)
		return
	}
	if oldModule != nil {
		oldModule.RemoveLoad(oldLoad)
	}
	if newModule != nil {
		newModule.AddLoad(newLoad)
	}
}

// OnOrderRemoved subtracts a deleted order's load from its module.
func (ModuleLoadAggregator) OnOrderRemoved(m *module.Module, o *order.Order) {
	if m == nil {
		return
	}
	m.RemoveLoad(o.LoadDays())
}

// Sum totals the load of the orders that reference m.
func (ModuleLoadAggregator) Sum(m *module.Module, orders []*order.Order) (kernel.LoadDays, error) {
	total := kernel.ZeroLoadDays()
	for _, o := range orders {
		id := o.ModuleID()
		if id == nil || !id.IsEqual(m.ID()) {
			return kernel.LoadDays{}, fmt.Errorf("order %s does not belong to module %s", o.ID(), m.ID())
		}
		total = total.Add(o.LoadDays())
	}
	return total, nil
}

// Recompute resets m's aggregate to the exact sum of orders and reports whether the stored
// value had drifted.
func (a ModuleLoadAggregator) Recompute(m *module.Module, orders []*order.Order) (bool, error) {
	total, err := a.Sum(m, orders)
	if err != nil {
		return false, err
	}
	drifted := !total.IsEqual(m.AggregateLoadDays())
	m.ResetLoad(total)
	return drifted, nil
}
