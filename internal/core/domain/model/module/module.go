package module

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"
	"workload/internal/pkg/guard"
)

const (
	nameMinLength        = 2
	nameMaxLength        = 100
	descriptionMaxLength = 255
)

var ErrModuleIsNotConstructed = errors.New("Module must be created via NewModule or RestoreModule constructor")

// Module is a production line or cell. It carries the headcount used to turn standard minutes
// into person-days and the running total of the load of every order that references it.
//
// aggregateLoadDays is maintained by the module load aggregator domain service; Module only
// guarantees it never goes negative.
type Module struct {
	id                kernel.UUID
	name              string
	description       string
	numPersons        int
	aggregateLoadDays kernel.LoadDays
	version           int64

	guard guard.ConstructorGuard
}

// NewModule creates a module without orders.
func NewModule(id kernel.UUID, name, description string, numPersons int) (*Module, error) {
	m := &Module{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setDescription(description),
		m.SetNumPersons(numPersons),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreModule rebuilds a module from storage, including its stored aggregate and version.
func RestoreModule(
	id kernel.UUID,
	name, description string,
	numPersons int,
	aggregateLoadDays kernel.LoadDays,
	version int64,
) (*Module, error) {
	m := &Module{
		guard:             guard.NewConstructorGuard(),
		aggregateLoadDays: aggregateLoadDays,
		version:           version,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setDescription(description),
		m.SetNumPersons(numPersons),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Module) Validate() error {
	if m == nil {
		return ErrModuleIsNotConstructed
	}
	return m.guard.Validate(ErrModuleIsNotConstructed)
}

func (m *Module) IsEqual(other *Module) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Module) ID() kernel.UUID                    { return m.id }
func (m *Module) Name() string                       { return m.name }
func (m *Module) Description() string                { return m.description }
func (m *Module) NumPersons() int                    { return m.numPersons }
func (m *Module) AggregateLoadDays() kernel.LoadDays { return m.aggregateLoadDays }
func (m *Module) Version() int64                     { return m.version }

// Rename changes the unique module name. Uniqueness is checked by the caller against the store.
func (m *Module) Rename(name string) error {
	return m.setName(name)
}

func (m *Module) Describe(description string) error {
	return m.setDescription(description)
}

// SetNumPersons changes the headcount. Callers must recompute the load of the module's orders.
func (m *Module) SetNumPersons(numPersons int) error {
	if numPersons < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"numPersons", numPersons, 0, "unbounded",
			errors.New("numPersons must be >= 0"),
		)
	}
	m.numPersons = numPersons
	return nil
}

// AddLoad increases the aggregate by an order's load.
func (m *Module) AddLoad(load kernel.LoadDays) {
	m.aggregateLoadDays = m.aggregateLoadDays.Add(load)
}

// RemoveLoad decreases the aggregate by an order's load, flooring at zero.
func (m *Module) RemoveLoad(load kernel.LoadDays) {
	m.aggregateLoadDays = m.aggregateLoadDays.Sub(load)
}

// ResetLoad replaces the aggregate with a freshly computed sum.
func (m *Module) ResetLoad(total kernel.LoadDays) {
	m.aggregateLoadDays = total
}

// CheckVersion compares a caller supplied version token with the loaded one.
func (m *Module) CheckVersion(expected int64) error {
	if expected <= 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not positive", expected))
	}
	if expected != m.version {
		return errs.NewConcurrentUpdateErrorWithCause(
			"module", m.id.String(),
			fmt.Errorf("expected version %d, stored version is %d", expected, m.version),
		)
	}
	return nil
}

// MarkPersisted advances the version after the store accepted a write.
func (m *Module) MarkPersisted() {
	m.version++
}

func (m *Module) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Module) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n < nameMinLength || n > nameMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"name length", n, nameMinLength, nameMaxLength,
			fmt.Errorf("name must be between %d and %d characters", nameMinLength, nameMaxLength),
		)
	}
	m.name = name
	return nil
}

func (m *Module) setDescription(description string) error {
	if n := utf8.RuneCountInString(description); n > descriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, descriptionMaxLength)
	}
	m.description = description
	return nil
}
