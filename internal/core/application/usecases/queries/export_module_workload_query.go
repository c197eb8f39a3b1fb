package queries

import (
	"errors"

	"workload/internal/pkg/guard"
)

var ErrExportModuleWorkloadQueryIsNotConstructed = errors.New(
	"ExportModuleWorkloadQuery must be created via NewExportModuleWorkloadQuery constructor",
)

// ExportModuleWorkloadQuery renders every module and its orders as an xlsx workbook.
type ExportModuleWorkloadQuery struct {
	guard guard.ConstructorGuard
}

func NewExportModuleWorkloadQuery() ExportModuleWorkloadQuery {
	return ExportModuleWorkloadQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportModuleWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrExportModuleWorkloadQueryIsNotConstructed)
}

// WorkloadReport is a finished workbook.
type WorkloadReport struct {
	Filename string
	Content  []byte
}
