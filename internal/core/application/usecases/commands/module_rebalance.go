package commands

import (
	"context"

	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/services"
	"workload/internal/core/ports"
)

// rebalanceModule recomputes the load of every order of m with m's current headcount, writes
// the orders whose load moved and resets m's aggregate to their exact sum. m itself is not
// written. drifted reports whether the aggregate differed from that sum.
func rebalanceModule(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	m *module.Module,
) (ordersUpdated int, drifted bool, err error) {
	orders, err := orderRepo.GetByModule(ctx, m.ID())
	if err != nil {
		return 0, false, err
	}

	calculator := services.NewLoadCalculator()
	for _, o := range orders {
		previous, current := calculator.Refresh(o, m)
		if previous.IsEqual(current) {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return ordersUpdated, false, err
		}
		ordersUpdated++
	}

	drifted, err = services.NewModuleLoadAggregator().Recompute(m, orders)
	if err != nil {
		return ordersUpdated, false, err
	}
	return ordersUpdated, drifted, nil
}
