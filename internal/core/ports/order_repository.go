// Package ports defines the persistence contracts the application layer depends on.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Writes are guarded by the aggregate's version: Update and Delete only touch the row
// whose stored version equals order.Version() and fail with errs.ConcurrentUpdateError otherwise.
// A successful Add or Update advances the in-memory version through MarkPersisted.
type OrderRepository interface {
	// Add persists a new order. A duplicate op fails with errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get fails with errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOp looks an order up by its business key.
	GetByOp(ctx context.Context, op string) (*order.Order, error)

	// ExistsByOp reports whether another order uses op. excluding may be nil.
	ExistsByOp(ctx context.Context, op string, excluding *kernel.UUID) (bool, error)

	// GetByModule returns every order referencing the module, oldest first.
	GetByModule(ctx context.Context, moduleID kernel.UUID) ([]*order.Order, error)
}
