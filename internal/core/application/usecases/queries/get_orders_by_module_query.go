package queries

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrGetOrdersByModuleQueryIsNotConstructed = errors.New(
	"GetOrdersByModuleQuery must be created via NewGetOrdersByModuleQuery constructor",
)

type GetOrdersByModuleQuery struct {
	moduleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrdersByModuleQuery(moduleID kernel.UUID) (GetOrdersByModuleQuery, error) {
	if err := moduleID.Validate(); err != nil {
		return GetOrdersByModuleQuery{}, err
	}
	return GetOrdersByModuleQuery{moduleID: moduleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersByModuleQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByModuleQueryIsNotConstructed)
}

func (q GetOrdersByModuleQuery) ModuleID() kernel.UUID { return q.moduleID }
