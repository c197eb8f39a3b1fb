package commands

import (
	"encoding/json"
	"errors"
	"slices"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
	"workload/internal/pkg/guard"
)

var ErrPatchOrderCommandIsNotConstructed = errors.New(
	"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
)

// PatchOrderCommand carries an arbitrary field map, already decoded into order changes.
// A null moduleId detaches the order from its module.
type PatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	expectedVersion int64
	actor           string
	changes         []order.Change

	guard guard.ConstructorGuard
}

func NewPatchOrderCommand(
	orderID kernel.UUID,
	expectedVersion int64,
	actor string,
	fields map[string]json.RawMessage,
) (PatchOrderCommand, error) {
	actor, actorErr := normalizeActor(actor)
	changes, decodeErr := DecodeOrderPatch(fields)

	if err := errors.Join(
		orderID.Validate(),
		validateExpectedVersion(expectedVersion),
		actorErr,
		decodeErr,
	); err != nil {
		return PatchOrderCommand{}, err
	}

	return PatchOrderCommand{
		orderID:         orderID,
		expectedVersion: expectedVersion,
		actor:           actor,
		changes:         changes,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

func (c PatchOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c PatchOrderCommand) ExpectedVersion() int64  { return c.expectedVersion }
func (c PatchOrderCommand) Actor() string           { return c.actor }
func (c PatchOrderCommand) Changes() []order.Change { return slices.Clone(c.changes) }
