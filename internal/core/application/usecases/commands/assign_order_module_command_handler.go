package commands

import (
	"context"

	"workload/internal/core/domain/model/order"
)

// AssignOrderModuleCommandHandler reassigns an order. The order's load is recomputed with the
// new module's headcount, so the amount removed from the old module and the amount added to the
// new one can differ.
type AssignOrderModuleCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignOrderModuleCommandHandler(uowFactory UoWFactory) AssignOrderModuleCommandHandler {
	return AssignOrderModuleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignOrderModuleCommandHandler) Handle(ctx context.Context, cmd AssignOrderModuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return orderMutation{
		orderID:         cmd.OrderID(),
		expectedVersion: cmd.ExpectedVersion(),
		mutate: func(o *order.Order) error {
			return o.Apply(cmd.Actor(), order.SetModule(cmd.ModuleID()))
		},
	}.run(ctx, h.uowFactory)
}
