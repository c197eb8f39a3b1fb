package queries

import (
	"errors"
	"strings"

	"workload/internal/pkg/errs"
	"workload/internal/pkg/guard"
)

var ErrGetOrderByOpQueryIsNotConstructed = errors.New(
	"GetOrderByOpQuery must be created via NewGetOrderByOpQuery constructor",
)

// GetOrderByOpQuery looks an order up by its business key.
type GetOrderByOpQuery struct {
	op string

	guard guard.ConstructorGuard
}

func NewGetOrderByOpQuery(op string) (GetOrderByOpQuery, error) {
	op = strings.TrimSpace(op)
	if op == "" {
		return GetOrderByOpQuery{}, errs.NewValueIsRequiredError("op")
	}
	return GetOrderByOpQuery{op: op, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderByOpQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByOpQueryIsNotConstructed)
}

func (q GetOrderByOpQuery) Op() string { return q.op }
