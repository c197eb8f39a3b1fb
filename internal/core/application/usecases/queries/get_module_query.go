package queries

import (
	"errors"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/guard"
)

var ErrGetModuleQueryIsNotConstructed = errors.New(
	"GetModuleQuery must be created via NewGetModuleQuery constructor",
)

type GetModuleQuery struct {
	moduleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetModuleQuery(moduleID kernel.UUID) (GetModuleQuery, error) {
	if err := moduleID.Validate(); err != nil {
		return GetModuleQuery{}, err
	}
	return GetModuleQuery{moduleID: moduleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetModuleQuery) Validate() error {
	return q.guard.Validate(ErrGetModuleQueryIsNotConstructed)
}

func (q GetModuleQuery) ModuleID() kernel.UUID { return q.moduleID }
