package order

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"
	"workload/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

var (
	digitsPattern       = regexp.MustCompile(`^[0-9]*$`)
	lettersPattern      = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]*$`)
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]*$`)
)

// Details carries the business attributes of a production order that are supplied by the
// planner rather than derived. It is a plain input value; Order validates it on every write.
type Details struct {
	Op                 string
	Price              decimal.Decimal
	AssignedDate       time.Time
	PlantEntryDate     *time.Time
	Reference          string
	Brand              string
	Campaign           string
	Type               string
	Description        string
	ActualDeliveryDate string
	Sam                *float64
	Status             Status
	StoppageReason     StoppageReason
}

// State is the persisted, non-business part of an order used by RestoreOrder.
type State struct {
	Quantity      int
	SizeBreakdown map[string]int
	QuantityMade  int
	LoadDays      kernel.LoadDays
	ModuleID      *kernel.UUID
	CreatedBy     string
	UpdatedBy     string
	Version       int64
}

// Order is a manufacturing production order and the aggregate root of this package.
//
// Invariants held after every successful mutation:
//   - sum(sizeBreakdown) == quantity whenever the breakdown is non-empty
//   - 0 <= quantityMade <= quantity
//   - missing == quantity - quantityMade
//   - samTotal == round(missing * sam) when sam is set, otherwise unset
//
// loadDays depends on the owning module's headcount and is assigned by the load calculator
// domain service through ApplyLoad.
type Order struct {
	id      kernel.UUID
	details Details

	quantity      int
	sizeBreakdown SizeBreakdown
	quantityMade  int
	missing       int
	samTotal      *int
	loadDays      kernel.LoadDays

	moduleID *kernel.UUID

	createdBy string
	updatedBy string
	version   int64

	guard guard.ConstructorGuard
}

// NewOrder creates an order in its initial state: quantity reconciled against the size
// breakdown, nothing produced, status defaulted to InProcess and no module.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), details, 0, map[string]int{"S": 5, "M": 5}, "planner")
//	// o.Quantity() == 10, o.Missing() == 10
func NewOrder(id kernel.UUID, details Details, quantity int, sizes map[string]int, actor string) (*Order, error) {
	o := &Order{
		guard:     guard.NewConstructorGuard(),
		createdBy: actor,
		updatedBy: actor,
	}

	if details.Status == Unknown {
		details.Status = InProcess
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.setQuantity(quantity, sizes),
	); err != nil {
		return nil, err
	}

	o.recalculate()
	return o, nil
}

// RestoreOrder rebuilds an order from storage. Derived progress fields are recomputed from the
// stored quantity, progress and time standard; loadDays is taken as stored.
func RestoreOrder(id kernel.UUID, details Details, state State) (*Order, error) {
	o := &Order{
		guard:     guard.NewConstructorGuard(),
		loadDays:  state.LoadDays,
		moduleID:  state.ModuleID,
		createdBy: state.CreatedBy,
		updatedBy: state.UpdatedBy,
		version:   state.Version,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
		o.restoreQuantity(state.Quantity, state.SizeBreakdown),
	); err != nil {
		return nil, err
	}

	if state.QuantityMade < 0 || state.QuantityMade > o.quantity {
		return nil, errs.NewValueIsOutOfRangeError("quantityMade", state.QuantityMade, 0, o.quantity)
	}
	o.quantityMade = state.QuantityMade

	o.recalculate()
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) Details() Details               { return o.details }
func (o *Order) Op() string                     { return o.details.Op }
func (o *Order) Status() Status                 { return o.details.Status }
func (o *Order) Quantity() int                  { return o.quantity }
func (o *Order) QuantityMade() int              { return o.quantityMade }
func (o *Order) Missing() int                   { return o.missing }
func (o *Order) LoadDays() kernel.LoadDays      { return o.loadDays }
func (o *Order) CreatedBy() string              { return o.createdBy }
func (o *Order) UpdatedBy() string              { return o.updatedBy }
func (o *Order) Version() int64                 { return o.version }
func (o *Order) SizeBreakdown() SizeBreakdown   { return o.sizeBreakdown.Clone() }
func (o *Order) StoppageReason() StoppageReason { return o.details.StoppageReason }

// Sam returns the standard minutes per unit, or nil when not set.
func (o *Order) Sam() *float64 {
	if o.details.Sam == nil {
		return nil
	}
	v := *o.details.Sam
	return &v
}

// SamTotal returns the standard minutes of the remaining units, or nil when sam is not set.
func (o *Order) SamTotal() *int {
	if o.samTotal == nil {
		return nil
	}
	v := *o.samTotal
	return &v
}

// ModuleID returns the owning module, or nil for an unassigned order.
func (o *Order) ModuleID() *kernel.UUID {
	if o.moduleID == nil {
		return nil
	}
	id := *o.moduleID
	return &id
}

// TotalPrice is price × quantity.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.details.Price.Mul(decimal.NewFromInt(int64(o.quantity)))
}

// DeliveryPercentage is the share of produced units, 0 for an order without quantity.
func (o *Order) DeliveryPercentage() float64 {
	if o.quantity == 0 {
		return 0
	}
	return float64(o.quantityMade) / float64(o.quantity) * 100
}

// CycleDays counts days from the assigned date to the plant entry date, or to now while the
// order has not entered the plant. Negative spans count as zero.
func (o *Order) CycleDays(now time.Time) int {
	end := now
	if o.details.PlantEntryDate != nil {
		end = *o.details.PlantEntryDate
	}
	days := int(dateOf(end).Sub(dateOf(o.details.AssignedDate)).Hours() / 24)
	return max(0, days)
}

// ApplyLoad records the workload computed by the load calculator.
func (o *Order) ApplyLoad(load kernel.LoadDays) {
	o.loadDays = load
}

// AssignModule points the order at a module. Aggregates are maintained by the caller.
func (o *Order) AssignModule(moduleID kernel.UUID) error {
	if err := moduleID.Validate(); err != nil {
		return err
	}
	o.moduleID = &moduleID
	return nil
}

// ClearModule detaches the order from its module.
func (o *Order) ClearModule() {
	o.moduleID = nil
}

// Touch records the actor of the current mutation.
func (o *Order) Touch(actor string) {
	if actor != "" {
		o.updatedBy = actor
	}
}

// CheckVersion compares a caller supplied version token with the loaded one.
func (o *Order) CheckVersion(expected int64) error {
	if expected <= 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not positive", expected))
	}
	if expected != o.version {
		return errs.NewConcurrentUpdateErrorWithCause(
			"order", o.id.String(),
			fmt.Errorf("expected version %d, stored version is %d", expected, o.version),
		)
	}
	return nil
}

// MarkPersisted advances the version after the store accepted a write.
func (o *Order) MarkPersisted() {
	o.version++
}

// clone returns a deep copy used to apply change sets atomically.
func (o *Order) clone() *Order {
	c := *o
	c.sizeBreakdown = o.sizeBreakdown.Clone()
	c.details.Sam = o.Sam()
	c.samTotal = o.SamTotal()
	c.moduleID = o.ModuleID()
	if o.details.PlantEntryDate != nil {
		d := *o.details.PlantEntryDate
		c.details.PlantEntryDate = &d
	}
	return &c
}

// recalculate derives missing and samTotal from quantity, progress and time standard.
func (o *Order) recalculate() {
	o.missing = max(0, o.quantity-o.quantityMade)

	if o.details.Sam == nil || *o.details.Sam <= 0 {
		o.samTotal = nil
		return
	}
	total := int(math.Round(float64(o.missing) * *o.details.Sam))
	o.samTotal = &total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	d.Op = strings.TrimSpace(d.Op)
	d.Campaign = strings.TrimSpace(d.Campaign)

	if err := validateDetails(d); err != nil {
		return err
	}
	o.details = d
	return nil
}

// setQuantity runs the size breakdown reconciler used on creation and on updates.
func (o *Order) setQuantity(quantity int, sizes map[string]int) error {
	q, breakdown, err := ReconcileQuantity(quantity, sizes)
	if err != nil {
		return err
	}
	o.quantity = q
	o.sizeBreakdown = breakdown
	return nil
}

// restoreQuantity accepts rows written before size breakdowns were mandatory.
func (o *Order) restoreQuantity(quantity int, sizes map[string]int) error {
	if len(sizes) == 0 {
		if quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
		}
		o.quantity = quantity
		o.sizeBreakdown = SizeBreakdown{}
		return nil
	}
	return o.setQuantity(quantity, sizes)
}

func validateDetails(d Details) error {
	var problems []error

	if d.Op == "" {
		problems = append(problems, errs.NewValueIsRequiredError("op"))
	} else if !digitsPattern.MatchString(d.Op) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("op", errors.New("must contain only numbers")))
	}

	if d.Campaign == "" {
		problems = append(problems, errs.NewValueIsRequiredError("campaign"))
	} else if !digitsPattern.MatchString(d.Campaign) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("campaign", errors.New("must contain only numbers")))
	}

	if !digitsPattern.MatchString(d.Reference) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("reference", errors.New("must contain only numbers")))
	}
	if !lettersPattern.MatchString(d.Brand) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("brand", errors.New("must contain only letters")))
	}
	if !alphanumericPattern.MatchString(d.Type) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("type", errors.New("must contain letters and numbers")))
	}

	if !d.Price.IsPositive() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is not greater than 0", d.Price.String())))
	}
	if d.AssignedDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("assignedDate"))
	}
	if d.Sam != nil && !(*d.Sam > 0) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"sam", fmt.Errorf("%v is not greater than 0", *d.Sam)))
	}

	problems = append(problems, d.Status.Validate(), d.StoppageReason.Validate())
	return errors.Join(problems...)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
