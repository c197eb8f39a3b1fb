package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrAssignOrderModuleCommandIsNotConstructed = errors.New(
	"AssignOrderModuleCommand must be created via NewAssignOrderModuleCommand constructor",
)

// AssignOrderModuleCommand moves an order to another module. A nil module unassigns it.
type AssignOrderModuleCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	moduleID        *kernel.UUID
	expectedVersion int64
	actor           string

	guard guard.ConstructorGuard
}

func NewAssignOrderModuleCommand(
	orderID kernel.UUID,
	moduleID *kernel.UUID,
	expectedVersion int64,
	actor string,
) (AssignOrderModuleCommand, error) {
	actor, actorErr := normalizeActor(actor)

	if err := errors.Join(
		orderID.Validate(),
		validateOptionalID(moduleID),
		validateExpectedVersion(expectedVersion),
		actorErr,
	); err != nil {
		return AssignOrderModuleCommand{}, err
	}

	return AssignOrderModuleCommand{
		orderID:         orderID,
		moduleID:        copyPtr(moduleID),
		expectedVersion: expectedVersion,
		actor:           actor,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderModuleCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderModuleCommandIsNotConstructed)
}

func (c AssignOrderModuleCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignOrderModuleCommand) ModuleID() *kernel.UUID { return copyPtr(c.moduleID) }
func (c AssignOrderModuleCommand) ExpectedVersion() int64 { return c.expectedVersion }
func (c AssignOrderModuleCommand) Actor() string          { return c.actor }
