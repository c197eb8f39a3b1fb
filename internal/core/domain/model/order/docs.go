// Package order models manufacturing production orders.
//
// The package includes:
//   - Order: the aggregate root holding business details, quantity, size breakdown and progress
//   - ReconcileQuantity: the size breakdown reconciler run on creation and on every update that
//     touches quantity or sizeBreakdown
//   - ApplyDelta / SetMade: the progress tracker deriving missing units and the time-standard total
//   - Change: the closed set of patchable fields used by full and partial updates
//   - Status and StoppageReason: closed label sets
//
// Workload (loadDays) and module aggregates are computed by domain services; this package only
// stores the result.
package order
