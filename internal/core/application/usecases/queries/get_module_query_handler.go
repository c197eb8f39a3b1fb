package queries

import (
	"context"

	"workload/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetModuleQueryHandler reads a module with its stored aggregate load.
type GetModuleQueryHandler struct {
	db *gorm.DB
}

func NewGetModuleQueryHandler(db *gorm.DB) GetModuleQueryHandler {
	return GetModuleQueryHandler{db: db}
}

func (h GetModuleQueryHandler) Handle(ctx context.Context, query GetModuleQuery) (ModuleView, error) {
	if err := query.Validate(); err != nil {
		return ModuleView{}, err
	}

	var rows []moduleRow
	err := h.db.WithContext(ctx).
		Raw(moduleSelect+` WHERE m.id = ?`, query.ModuleID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return ModuleView{}, err
	}
	if len(rows) == 0 {
		return ModuleView{}, errs.NewObjectNotFoundError("module", query.ModuleID())
	}

	return rows[0].toView()
}
