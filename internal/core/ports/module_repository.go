package ports

import (
	"context"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
)

// ModuleRepository defines the persistence contract for module aggregates.
// Update is version checked like OrderRepository.Update.
type ModuleRepository interface {
	Add(ctx context.Context, aggregate *module.Module) error
	Update(ctx context.Context, aggregate *module.Module) error
	Get(ctx context.Context, id kernel.UUID) (*module.Module, error)
	GetAll(ctx context.Context) ([]*module.Module, error)

	// ExistsByName compares names case-insensitively. excluding may be nil.
	ExistsByName(ctx context.Context, name string, excluding *kernel.UUID) (bool, error)
}
