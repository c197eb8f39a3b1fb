package commands

import (
	"context"

	"workload/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies a presence-based update. quantityMade is routed through the
// progress tracker, quantity and sizeBreakdown through the reconciler, and the module aggregates
// follow the new load.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return orderMutation{
		orderID:         cmd.OrderID(),
		expectedVersion: cmd.ExpectedVersion(),
		mutate: func(o *order.Order) error {
			return o.Apply(cmd.Actor(), cmd.Changes()...)
		},
	}.run(ctx, h.uowFactory)
}
