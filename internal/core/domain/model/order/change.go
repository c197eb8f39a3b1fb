package order

import (
	"errors"
	"fmt"
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Field names a patchable attribute of an order. Values match the JSON keys of the API.
type Field string

const (
	FieldOp                 Field = "op"
	FieldPrice              Field = "price"
	FieldQuantity           Field = "quantity"
	FieldSizeBreakdown      Field = "sizeBreakdown"
	FieldQuantityMade       Field = "quantityMade"
	FieldSam                Field = "sam"
	FieldStatus             Field = "status"
	FieldStoppageReason     Field = "stoppageReason"
	FieldModule             Field = "moduleId"
	FieldReference          Field = "reference"
	FieldBrand              Field = "brand"
	FieldCampaign           Field = "campaign"
	FieldType               Field = "type"
	FieldDescription        Field = "description"
	FieldAssignedDate       Field = "assignedDate"
	FieldPlantEntryDate     Field = "plantEntryDate"
	FieldActualDeliveryDate Field = "actualDeliveryDate"
)

var ErrFieldIsImmutable = errors.New("field cannot be modified")

func patchableFields() map[Field]struct{} {
	return map[Field]struct{}{
		FieldOp: {}, FieldPrice: {}, FieldQuantity: {}, FieldSizeBreakdown: {}, FieldQuantityMade: {},
		FieldSam: {}, FieldStatus: {}, FieldStoppageReason: {}, FieldModule: {}, FieldReference: {},
		FieldBrand: {}, FieldCampaign: {}, FieldType: {}, FieldDescription: {}, FieldAssignedDate: {},
		FieldPlantEntryDate: {}, FieldActualDeliveryDate: {},
	}
}

func immutableFields() map[string]struct{} {
	return map[string]struct{}{
		"id": {}, "version": {}, "missing": {}, "samTotal": {}, "loadDays": {},
		"createdBy": {}, "updatedBy": {}, "totalPrice": {}, "deliveryPercentage": {}, "cycleDays": {},
	}
}

// ParseField resolves a patch key. Identity and derived keys are rejected as immutable,
// anything else that is not a known field as invalid.
func ParseField(key string) (Field, error) {
	if _, ok := immutableFields()[key]; ok {
		return "", errs.NewValueIsInvalidErrorWithCause(key, ErrFieldIsImmutable)
	}
	f := Field(key)
	if _, ok := patchableFields()[f]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(key, errors.New("unknown field"))
	}
	return f, nil
}

// draft collects the effect of a change set before it is validated and committed.
type draft struct {
	details  Details
	quantity int
	sizes    map[string]int
	made     *int
	moduleID *kernel.UUID
}

// Change is one validated assignment to a patchable field. Changes are only built through the
// Set* constructors below, so the set of variants is closed.
type Change struct {
	field Field
	apply func(d *draft)
}

// Field reports which attribute the change targets.
func (c Change) Field() Field {
	return c.field
}

func SetOp(v string) Change {
	return Change{field: FieldOp, apply: func(d *draft) { d.details.Op = v }}
}

func SetPrice(v decimal.Decimal) Change {
	return Change{field: FieldPrice, apply: func(d *draft) { d.details.Price = v }}
}

func SetQuantity(v int) Change {
	return Change{field: FieldQuantity, apply: func(d *draft) { d.quantity = v }}
}

func SetSizeBreakdown(v map[string]int) Change {
	sizes := NormalizeSizeBreakdown(v)
	return Change{field: FieldSizeBreakdown, apply: func(d *draft) { d.sizes = sizes }}
}

// SetQuantityMade routes an absolute progress value through the progress tracker.
func SetQuantityMade(v int) Change {
	return Change{field: FieldQuantityMade, apply: func(d *draft) { d.made = &v }}
}

// SetSam sets the per-unit time standard; nil clears it.
func SetSam(v *float64) Change {
	if v != nil {
		sam := *v
		v = &sam
	}
	return Change{field: FieldSam, apply: func(d *draft) { d.details.Sam = v }}
}

func SetStatus(v Status) Change {
	return Change{field: FieldStatus, apply: func(d *draft) { d.details.Status = v }}
}

func SetStoppageReason(v StoppageReason) Change {
	return Change{field: FieldStoppageReason, apply: func(d *draft) { d.details.StoppageReason = v }}
}

// SetModule points the order at a module; nil detaches it.
func SetModule(v *kernel.UUID) Change {
	return Change{field: FieldModule, apply: func(d *draft) { d.moduleID = v }}
}

func SetReference(v string) Change {
	return Change{field: FieldReference, apply: func(d *draft) { d.details.Reference = v }}
}

func SetBrand(v string) Change {
	return Change{field: FieldBrand, apply: func(d *draft) { d.details.Brand = v }}
}

func SetCampaign(v string) Change {
	return Change{field: FieldCampaign, apply: func(d *draft) { d.details.Campaign = v }}
}

func SetType(v string) Change {
	return Change{field: FieldType, apply: func(d *draft) { d.details.Type = v }}
}

func SetDescription(v string) Change {
	return Change{field: FieldDescription, apply: func(d *draft) { d.details.Description = v }}
}

func SetAssignedDate(v time.Time) Change {
	return Change{field: FieldAssignedDate, apply: func(d *draft) { d.details.AssignedDate = v }}
}

// SetPlantEntryDate sets the plant entry date; nil clears it.
func SetPlantEntryDate(v *time.Time) Change {
	if v != nil {
		date := *v
		v = &date
	}
	return Change{field: FieldPlantEntryDate, apply: func(d *draft) { d.details.PlantEntryDate = v }}
}

func SetActualDeliveryDate(v string) Change {
	return Change{field: FieldActualDeliveryDate, apply: func(d *draft) { d.details.ActualDeliveryDate = v }}
}

// Apply commits a change set atomically: either every change lands and all invariants hold
// again, or the order is left exactly as it was.
//
// The pipeline is: business field validation, size breakdown reconciliation (only when quantity
// or sizeBreakdown is part of the set), progress through ApplyDelta when quantityMade is part
// of the set, and re-derivation of missing and samTotal. loadDays is not touched; callers
// run the load calculator afterwards.
func (o *Order) Apply(actor string, changes ...Change) error {
	d := draft{
		details:  o.details,
		quantity: o.quantity,
		sizes:    o.sizeBreakdown.Clone(),
		moduleID: o.ModuleID(),
	}

	quantityTouched := false
	for _, c := range changes {
		if c.apply == nil {
			return errs.NewValueIsInvalidErrorWithCause(string(c.field), errors.New("change must be built by a Set constructor"))
		}
		c.apply(&d)
		if c.field == FieldQuantity || c.field == FieldSizeBreakdown {
			quantityTouched = true
		}
	}

	next := o.clone()
	if err := next.setDetails(d.details); err != nil {
		return err
	}

	if quantityTouched {
		if err := next.setQuantity(d.quantity, d.sizes); err != nil {
			return err
		}
	}

	next.moduleID = nil
	if d.moduleID != nil {
		if err := next.AssignModule(*d.moduleID); err != nil {
			return err
		}
	}

	if d.made != nil {
		if err := next.SetMade(*d.made); err != nil {
			return err
		}
	}

	if next.quantityMade > next.quantity {
		return errs.NewDomainRuleViolatedErrorWithCause(
			RuleProgressExceedsQuantity,
			fmt.Errorf("quantity %d is below the %d units already produced", next.quantity, next.quantityMade),
		)
	}

	next.recalculate()
	next.Touch(actor)
	*o = *next
	return nil
}
