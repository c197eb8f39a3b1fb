package commands

import (
	"errors"

	"workload/internal/pkg/guard"
)

var ErrReconcileModuleLoadsCommandIsNotConstructed = errors.New(
	"ReconcileModuleLoadsCommand must be created via NewReconcileModuleLoadsCommand constructor",
)

// ReconcileModuleLoadsCommand asks for every module's aggregate to be rebuilt from its orders.
type ReconcileModuleLoadsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewReconcileModuleLoadsCommand() (ReconcileModuleLoadsCommand, error) {
	return ReconcileModuleLoadsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcileModuleLoadsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileModuleLoadsCommandIsNotConstructed)
}
