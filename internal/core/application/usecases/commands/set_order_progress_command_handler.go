package commands

import (
	"context"

	"workload/internal/core/domain/model/order"
)

type SetOrderProgressCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetOrderProgressCommandHandler(uowFactory UoWFactory) SetOrderProgressCommandHandler {
	return SetOrderProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves progress through the progress tracker. Negative or over-quantity results are
// rejected as domain rule violations and nothing is written.
func (h SetOrderProgressCommandHandler) Handle(ctx context.Context, cmd SetOrderProgressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return orderMutation{
		orderID:         cmd.OrderID(),
		expectedVersion: cmd.ExpectedVersion(),
		mutate: func(o *order.Order) error {
			if err := o.SetMade(cmd.QuantityMade()); err != nil {
				return err
			}
			o.Touch(cmd.Actor())
			return nil
		},
	}.run(ctx, h.uowFactory)
}
