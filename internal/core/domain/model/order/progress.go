package order

import (
	"fmt"

	"workload/internal/pkg/errs"
)

// Progress rule names reported through errs.DomainRuleViolatedError.
const (
	RuleQuantityNotSet          = "quantity not set"
	RuleNegativeProgress        = "negative progress"
	RuleProgressExceedsQuantity = "progress exceeds quantity"
)

// ApplyDelta adds delta produced units (negative deltas undo progress) and re-derives missing
// and samTotal. A zero delta is a no-op apart from idempotent re-derivation.
// On error the order is left untouched.
func (o *Order) ApplyDelta(delta int) error {
	if delta == 0 {
		o.recalculate()
		return nil
	}

	if o.quantity <= 0 {
		return errs.NewDomainRuleViolatedError(RuleQuantityNotSet)
	}

	// 0 <= quantityMade <= quantity holds here, so the bounds below cannot overflow.
	if delta < -o.quantityMade {
		return errs.NewDomainRuleViolatedErrorWithCause(
			RuleNegativeProgress,
			fmt.Errorf("%d produced %+d would be below zero", o.quantityMade, delta),
		)
	}
	if delta > o.quantity-o.quantityMade {
		return errs.NewDomainRuleViolatedErrorWithCause(
			RuleProgressExceedsQuantity,
			fmt.Errorf("%d produced %+d would exceed quantity %d", o.quantityMade, delta, o.quantity),
		)
	}

	o.quantityMade += delta
	o.recalculate()
	return nil
}

// SetMade sets the produced units to an absolute value through ApplyDelta.
func (o *Order) SetMade(value int) error {
	if value < 0 && o.quantity > 0 {
		return errs.NewDomainRuleViolatedErrorWithCause(
			RuleNegativeProgress,
			fmt.Errorf("made %d is below zero", value),
		)
	}
	return o.ApplyDelta(value - o.quantityMade)
}
