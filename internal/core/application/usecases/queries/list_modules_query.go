package queries

import (
	"errors"
	"strings"

	"workload/internal/pkg/guard"
)

var (
	ErrListModulesQueryIsNotConstructed = errors.New(
		"ListModulesQuery must be created via NewListModulesQuery constructor",
	)
	ErrFindModulesByNameQueryIsNotConstructed = errors.New(
		"FindModulesByNameQuery must be created via NewFindModulesByNameQuery constructor",
	)
)

// ListModulesQuery returns every module ordered by name.
type ListModulesQuery struct {
	guard guard.ConstructorGuard
}

func NewListModulesQuery() ListModulesQuery {
	return ListModulesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListModulesQuery) Validate() error {
	return q.guard.Validate(ErrListModulesQueryIsNotConstructed)
}

// FindModulesByNameQuery matches a name fragment case-insensitively.
type FindModulesByNameQuery struct {
	fragment string

	guard guard.ConstructorGuard
}

func NewFindModulesByNameQuery(fragment string) FindModulesByNameQuery {
	return FindModulesByNameQuery{fragment: strings.TrimSpace(fragment), guard: guard.NewConstructorGuard()}
}

func (q FindModulesByNameQuery) Validate() error {
	return q.guard.Validate(ErrFindModulesByNameQueryIsNotConstructed)
}

func (q FindModulesByNameQuery) Fragment() string { return q.fragment }
