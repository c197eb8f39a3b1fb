package queries

import (
	"errors"
	"fmt"
	"time"

	"workload/internal/pkg/errs"
	"workload/internal/pkg/guard"
)

var ErrGetOrdersByPlantEntryDateRangeQueryIsNotConstructed = errors.New(
	"GetOrdersByPlantEntryDateRangeQuery must be created via NewGetOrdersByPlantEntryDateRangeQuery constructor",
)

// GetOrdersByPlantEntryDateRangeQuery selects orders that entered the plant between two dates,
// both inclusive. Orders without a plant entry date never match.
type GetOrdersByPlantEntryDateRangeQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

func NewGetOrdersByPlantEntryDateRangeQuery(start, end time.Time) (GetOrdersByPlantEntryDateRangeQuery, error) {
	var problems []error
	if start.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("startDate"))
	}
	if end.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("endDate"))
	}
	if len(problems) == 0 && end.Before(start) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"endDate", fmt.Errorf("%s is before %s", end.Format(time.DateOnly), start.Format(time.DateOnly))))
	}
	if err := errors.Join(problems...); err != nil {
		return GetOrdersByPlantEntryDateRangeQuery{}, err
	}

	return GetOrdersByPlantEntryDateRangeQuery{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersByPlantEntryDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPlantEntryDateRangeQueryIsNotConstructed)
}

func (q GetOrdersByPlantEntryDateRangeQuery) Start() time.Time { return q.start }
func (q GetOrdersByPlantEntryDateRangeQuery) End() time.Time   { return q.end }
