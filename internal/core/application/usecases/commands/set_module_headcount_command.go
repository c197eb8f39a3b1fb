package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrSetModuleHeadcountCommandIsNotConstructed = errors.New(
	"SetModuleHeadcountCommand must be created via NewSetModuleHeadcountCommand constructor",
)

type SetModuleHeadcountCommand struct { //nolint:recvcheck //using for validation
	moduleID        kernel.UUID
	numPersons      int
	expectedVersion int64

	guard guard.ConstructorGuard
}

func NewSetModuleHeadcountCommand(moduleID kernel.UUID, numPersons int, expectedVersion int64) (SetModuleHeadcountCommand, error) {
	if err := errors.Join(
		moduleID.Validate(),
		validateExpectedVersion(expectedVersion),
	); err != nil {
		return SetModuleHeadcountCommand{}, err
	}

	return SetModuleHeadcountCommand{
		moduleID:        moduleID,
		numPersons:      numPersons,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c SetModuleHeadcountCommand) Validate() error {
	return c.guard.Validate(ErrSetModuleHeadcountCommandIsNotConstructed)
}

func (c SetModuleHeadcountCommand) ModuleID() kernel.UUID  { return c.moduleID }
func (c SetModuleHeadcountCommand) NumPersons() int        { return c.numPersons }
func (c SetModuleHeadcountCommand) ExpectedVersion() int64 { return c.expectedVersion }
