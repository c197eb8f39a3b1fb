package commands

import (
	"context"

	"workload/internal/core/domain/model/order"
)

// PatchOrderCommandHandler runs the same pipeline as UpdateOrderCommandHandler. The two differ
// only in how their changes are built.
type PatchOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewPatchOrderCommandHandler(uowFactory UoWFactory) PatchOrderCommandHandler {
	return PatchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) error {
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
