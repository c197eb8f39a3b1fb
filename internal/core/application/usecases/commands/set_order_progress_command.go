package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrSetOrderProgressCommandIsNotConstructed = errors.New(
	"SetOrderProgressCommand must be created via NewSetOrderProgressCommand constructor",
)

// SetOrderProgressCommand sets the absolute number of produced units.
type SetOrderProgressCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	quantityMade    int
	expectedVersion int64
	actor           string

	guard guard.ConstructorGuard
}

func NewSetOrderProgressCommand(
	orderID kernel.UUID,
	quantityMade int,
	expectedVersion int64,
	actor string,
) (SetOrderProgressCommand, error) {
	actor, actorErr := normalizeActor(actor)

	if err := errors.Join(
		orderID.Validate(),
		validateExpectedVersion(expectedVersion),
		actorErr,
	); err != nil {
		return SetOrderProgressCommand{}, err
	}

	return SetOrderProgressCommand{
		orderID:         orderID,
		quantityMade:    quantityMade,
		expectedVersion: expectedVersion,
		actor:           actor,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderProgressCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderProgressCommandIsNotConstructed)
}

func (c SetOrderProgressCommand) OrderID() kernel.UUID   { return c.orderID }
func (c SetOrderProgressCommand) QuantityMade() int      { return c.quantityMade }
func (c SetOrderProgressCommand) ExpectedVersion() int64 { return c.expectedVersion }
func (c SetOrderProgressCommand) Actor() string          { return c.actor }
