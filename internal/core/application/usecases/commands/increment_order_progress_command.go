package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrIncrementOrderProgressCommandIsNotConstructed = errors.New(
	"IncrementOrderProgressCommand must be created via NewIncrementOrderProgressCommand constructor",
)

// IncrementOrderProgressCommand adds delta produced units. A negative delta undoes progress.
type IncrementOrderProgressCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	delta           int
	expectedVersion int64
	actor           string

	guard guard.ConstructorGuard
}

func NewIncrementOrderProgressCommand(
	orderID kernel.UUID,
	delta int,
	expectedVersion int64,
	actor string,
) (IncrementOrderProgressCommand, error) {
	actor, actorErr := normalizeActor(actor)

	if err := errors.Join(
		orderID.Validate(),
		validateExpectedVersion(expectedVersion),
		actorErr,
	); err != nil {
		return IncrementOrderProgressCommand{}, err
	}

	return IncrementOrderProgressCommand{
		orderID:         orderID,
		delta:           delta,
		expectedVersion: expectedVersion,
		actor:           actor,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c IncrementOrderProgressCommand) Validate() error {
	return c.guard.Validate(ErrIncrementOrderProgressCommandIsNotConstructed)
}

func (c IncrementOrderProgressCommand) OrderID() kernel.UUID   { return c.orderID }
func (c IncrementOrderProgressCommand) Delta() int             { return c.delta }
func (c IncrementOrderProgressCommand) ExpectedVersion() int64 { return c.expectedVersion }
func (c IncrementOrderProgressCommand) Actor() string          { return c.actor }
