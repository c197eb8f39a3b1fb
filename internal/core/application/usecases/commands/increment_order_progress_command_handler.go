package commands

import (
	"context"

	"workload/internal/core/domain/model/order"
)

type IncrementOrderProgressCommandHandler struct {
	uowFactory UoWFactory
}

func NewIncrementOrderProgressCommandHandler(uowFactory UoWFactory) IncrementOrderProgressCommandHandler {
	return IncrementOrderProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h IncrementOrderProgressCommandHandler) Handle(ctx context.Context, cmd IncrementOrderProgressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return orderMutation{
		orderID:         cmd.OrderID(),
		expectedVersion: cmd.ExpectedVersion(),
		mutate: func(o *order.Order) error {
			if err := o.ApplyDelta(cmd.Delta()); err != nil {
				return err
			}
			o.Touch(cmd.Actor())
			return nil
		},
	}.run(ctx, h.uowFactory)
}
