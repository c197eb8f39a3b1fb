package commands

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrCreateModuleCommandIsNotConstructed = errors.New(
	"CreateModuleCommand must be created via NewCreateModuleCommand constructor",
)

type CreateModuleCommand struct { //nolint:recvcheck //using for validation
	moduleID    kernel.UUID
	name        string
	description string
	numPersons  int

	guard guard.ConstructorGuard
}

// NewCreateModuleCommand checks only what the module constructor cannot: the identifier.
// Name and headcount rules live on module.Module.
func NewCreateModuleCommand(moduleID kernel.UUID, name, description string, numPersons int) (CreateModuleCommand, error) {
	if err := moduleID.Validate(); err != nil {
		return CreateModuleCommand{}, err
	}

	return CreateModuleCommand{
		moduleID:    moduleID,
		name:        name,
		description: description,
		numPersons:  numPersons,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateModuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateModuleCommandIsNotConstructed)
}

func (c CreateModuleCommand) ModuleID() kernel.UUID { return c.moduleID }
func (c CreateModuleCommand) Name() string          { return c.name }
func (c CreateModuleCommand) Description() string   { return c.description }
func (c CreateModuleCommand) NumPersons() int       { return c.numPersons }
