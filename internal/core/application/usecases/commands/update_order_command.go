package commands

import (
	"errors"
	"slices"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/errs"
	"workload/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand overwrites the order fields present in the request. Absent fields keep
// their stored values. expectedVersion 0 skips the optimistic version check.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	expectedVersion int64
	actor           string
	changes         []order.Change

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID kernel.UUID,
	expectedVersion int64,
	actor string,
	changes ...order.Change,
) (UpdateOrderCommand, error) {
	actor, actorErr := normalizeActor(actor)

	problems := []error{orderID.Validate(), validateExpectedVersion(expectedVersion), actorErr}
	for _, c := range changes {
		if c.Field() == "" {
			problems = append(problems, errs.NewValueIsInvalidError("change"))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:         orderID,
		expectedVersion: expectedVersion,
		actor:           actor,
		changes:         slices.Clone(changes),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateOrderCommand) ExpectedVersion() int64  { return c.expectedVersion }
func (c UpdateOrderCommand) Actor() string           { return c.actor }
func (c UpdateOrderCommand) Changes() []order.Change { return slices.Clone(c.changes) }
