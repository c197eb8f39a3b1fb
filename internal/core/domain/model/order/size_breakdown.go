package order

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"workload/internal/pkg/errs"
)

var (
	ErrQuantityOrSizeBreakdownRequired = errs.NewValueIsRequiredErrorWithCause(
		"quantity or sizeBreakdown",
		errors.New("quantity or sizeBreakdown required"),
	)
	ErrSizeBreakdownRequired = errs.NewValueIsRequiredErrorWithCause(
		"sizeBreakdown",
		errors.New("sizeBreakdown required when quantity is provided"),
	)
)

// SizeBreakdown maps a size label ("S", "M", "10", ...) to a unit count.
// Values held by an Order are always normalized: no negative counts.
type SizeBreakdown map[string]int

// NormalizeSizeBreakdown copies in, clamping negative counts to zero.
// A nil map yields an empty breakdown.
func NormalizeSizeBreakdown(in map[string]int) SizeBreakdown {
	out := make(SizeBreakdown, len(in))
	for size, units := range in {
		out[size] = max(0, units)
	}
	return out
}

// Sum returns the total units across all sizes, saturating at math.MaxInt.
func (b SizeBreakdown) Sum() int {
	total, ok := b.checkedSum()
	if !ok {
		return math.MaxInt
	}
	return total
}

// checkedSum reports false when the total does not fit in an int.
// Counts must already be normalized.
func (b SizeBreakdown) checkedSum() (int, bool) {
	total := 0
	for _, units := range b {
		if units > math.MaxInt-total {
			return 0, false
		}
		total += units
	}
	return total, true
}

// Sizes returns the labels in lexical order.
func (b SizeBreakdown) Sizes() []string {
	return slices.Sorted(maps.Keys(b))
}

// Clone returns an independent copy.
func (b SizeBreakdown) Clone() SizeBreakdown {
	if b == nil {
		return SizeBreakdown{}
	}
	return maps.Clone(b)
}

// IsEqual compares sizes and counts.
func (b SizeBreakdown) IsEqual(other SizeBreakdown) bool {
	return maps.Equal(b, other)
}

// ReconcileQuantity checks a declared quantity against a size breakdown.
//
//   - quantity 0 with a positive sum takes the sum as the quantity
//   - quantity 0 with nothing to sum fails with ErrQuantityOrSizeBreakdownRequired
//   - a positive quantity needs a positive sum (ErrSizeBreakdownRequired) equal to it
//
// The returned breakdown is normalized. Reconciling an already consistent pair returns it unchanged.
func ReconcileQuantity(quantity int, breakdown map[string]int) (int, SizeBreakdown, error) {
	if quantity < 0 {
		return 0, nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}

	normalized := NormalizeSizeBreakdown(breakdown)
	sum, ok := normalized.checkedSum()
	if !ok {
		return 0, nil, errs.NewValueIsOutOfRangeErrorWithCause(
			"sizeBreakdown", "sum of sizes", 0, math.MaxInt,
			errors.New("sum of sizes overflows"),
		)
	}

	if quantity == 0 {
		if sum > 0 {
			return sum, normalized, nil
		}
		return 0, nil, ErrQuantityOrSizeBreakdownRequired
	}

	if sum == 0 {
		return 0, nil, ErrSizeBreakdownRequired
	}

	if sum != quantity {
		return 0, nil, errs.NewValueIsInvalidErrorWithCause(
			"sizeBreakdown",
			fmt.Errorf("sizeBreakdown sum does not match quantity: sum of sizes is %d, quantity is %d", sum, quantity),
		)
	}

	return quantity, normalized, nil
}
