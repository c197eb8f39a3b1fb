package commands

import (
	"errors"
	"maps"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new production order, optionally already assigned to a module.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), details, 0, map[string]int{"S": 5, "M": 5}, nil, "planner")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	details       order.Details
	quantity      int
	sizeBreakdown map[string]int
	moduleID      *kernel.UUID
	actor         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks identifiers and the actor. Business fields are validated by
// the order aggregate when the handler builds it.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	details order.Details,
	quantity int,
	sizeBreakdown map[string]int,
	moduleID *kernel.UUID,
	actor string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details:       details,
		quantity:      quantity,
		sizeBreakdown: maps.Clone(sizeBreakdown),
		moduleID:      copyPtr(moduleID),
		guard:         guard.NewConstructorGuard(),
	}

	actor, actorErr := normalizeActor(actor)
	if err := errors.Join(orderID.Validate(), validateOptionalID(moduleID), actorErr); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID          { return c.orderID }
func (c CreateOrderCommand) Details() order.Details        { return c.details }
func (c CreateOrderCommand) Quantity() int                 { return c.quantity }
func (c CreateOrderCommand) SizeBreakdown() map[string]int { return maps.Clone(c.sizeBreakdown) }
func (c CreateOrderCommand) ModuleID() *kernel.UUID        { return copyPtr(c.moduleID) }
func (c CreateOrderCommand) Actor() string                 { return c.actor }
