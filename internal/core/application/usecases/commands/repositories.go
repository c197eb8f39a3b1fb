// Package commands contains the write operations of the application layer.
// Every handler validates its command, runs inside one unit of work and leaves nothing
// persisted when it returns an error.
package commands

import (
	"context"

	"workload/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ModuleRepoFactory provides access to module repository within a transaction.
	ModuleRepoFactory interface {
		ModuleRepository() ports.ModuleRepository
	}

	// ModuleUoW is enough for commands that never touch orders.
	ModuleUoW interface {
		TxManager
		ModuleRepoFactory
	}

	ModuleUoWFactory interface {
		Create() ModuleUoW
	}

	// UoW spans orders and modules. Order writes always need it because they move module aggregates.
	UoW interface {
		TxManager
		OrderRepoFactory
		ModuleRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
