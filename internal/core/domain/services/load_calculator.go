package services

import (
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const intermediateScale = 6

var (
	minutesPerHour     = decimal.NewFromInt(60)
	workingHoursPerDay = decimal.NewFromInt(9)
	contingencyFactor  = decimal.RequireFromString("1.35")
)

// LoadCalculator converts standard minutes and headcount into person-days:
//
//	loadDays = minutes / 60 / 9 / headcount × 1.35
//
// Each division is carried at six fractional digits and the result at two, all rounded
// half-up. Missing or non-positive minutes or headcount give 0.00.
type LoadCalculator struct{}

func NewLoadCalculator() LoadCalculator {
	return LoadCalculator{}
}

// Calculate is the pure load function. Either argument may be nil.
//
// Example:
//
//	minutes, persons := 600, 2
//	NewLoadCalculator().Calculate(&minutes, &persons).String() // "0.75"
func (LoadCalculator) Calculate(timeStandardTotalMinutes *int, headcount *int) kernel.LoadDays {
	if timeStandardTotalMinutes == nil || *timeStandardTotalMinutes <= 0 {
		return kernel.ZeroLoadDays()
	}
	if headcount == nil || *headcount <= 0 {
		return kernel.ZeroLoadDays()
	}

	days := decimal.NewFromInt(int64(*timeStandardTotalMinutes)).
		DivRound(minutesPerHour, intermediateScale).
		DivRound(workingHoursPerDay, intermediateScale).
		DivRound(decimal.NewFromInt(int64(*headcount)), intermediateScale).
		Mul(contingencyFactor)

	load, err := kernel.NewLoadDays(days)
	if err != nil {
		// unreachable: both inputs are positive
		return kernel.ZeroLoadDays()
	}
	return load
}

// ForOrder computes the load of o with the headcount of its module m. A nil module
// (unassigned order) yields 0.00.
func (c LoadCalculator) ForOrder(o *order.Order, m *module.Module) kernel.LoadDays {
	if m == nil {
		return kernel.ZeroLoadDays()
	}
	persons := m.NumPersons()
	return c.Calculate(o.SamTotal(), &persons)
}

// Refresh recomputes and stores the load of o, returning the previous and the new value.
func (c LoadCalculator) Refresh(o *order.Order, m *module.Module) (kernel.LoadDays, kernel.LoadDays) {
	previous := o.LoadDays()
	current := c.ForOrder(o, m)
	o.ApplyLoad(current)
	return previous, current
}
