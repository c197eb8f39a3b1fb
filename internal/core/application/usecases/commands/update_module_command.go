package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrUpdateModuleCommandIsNotConstructed = errors.New(
	"UpdateModuleCommand must be created via NewUpdateModuleCommand constructor",
)

// UpdateModuleCommand changes the fields that are not nil. A headcount change recomputes the
// load of every order of the module.
type UpdateModuleCommand struct { //nolint:recvcheck //using for validation
	moduleID        kernel.UUID
	name            *string
	description     *string
	numPersons      *int
	expectedVersion int64

	guard guard.ConstructorGuard
}

func NewUpdateModuleCommand(
	moduleID kernel.UUID,
	name, description *string,
	numPersons *int,
	expectedVersion int64,
) (UpdateModuleCommand, error) {
	if err := errors.Join(
		moduleID.Validate(),
		validateExpectedVersion(expectedVersion),
	); err != nil {
		return UpdateModuleCommand{}, err
	}

	return UpdateModuleCommand{
		moduleID:        moduleID,
		name:            copyPtr(name),
		description:     copyPtr(description),
		numPersons:      copyPtr(numPersons),
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateModuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateModuleCommandIsNotConstructed)
}

func (c UpdateModuleCommand) ModuleID() kernel.UUID  { return c.moduleID }
func (c UpdateModuleCommand) Name() *string          { return copyPtr(c.name) }
func (c UpdateModuleCommand) Description() *string   { return copyPtr(c.description) }
func (c UpdateModuleCommand) NumPersons() *int       { return copyPtr(c.numPersons) }
func (c UpdateModuleCommand) ExpectedVersion() int64 { return c.expectedVersion }
