package queries

import (
	"context"
	"time"

	"workload/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrdersByModuleQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetOrdersByModuleQueryHandler(db *gorm.DB) GetOrdersByModuleQueryHandler {
	return GetOrdersByModuleQueryHandler{db: db, now: time.Now}
}

// Handle lists the orders of a module, oldest first. An unknown module is reported as not
// found rather than as an empty list.
func (h GetOrdersByModuleQueryHandler) Handle(ctx context.Context, query GetOrdersByModuleQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	moduleID := query.ModuleID().Bytes()

	var count int64
	if err := db.Table("modules").Where("id = ?", moduleID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("module", query.ModuleID())
	}

	var rows []orderRow
	err := db.Raw(orderSelect+` WHERE o.module_id = ? ORDER BY o.created_at, o.id`, moduleID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderViews(rows, h.now())
}
