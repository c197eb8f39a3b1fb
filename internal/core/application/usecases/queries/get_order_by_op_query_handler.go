package queries

import (
	"context"
	"time"

	"workload/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderByOpQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetOrderByOpQueryHandler(db *gorm.DB) GetOrderByOpQueryHandler {
	return GetOrderByOpQueryHandler{db: db, now: time.Now}
}

func (h GetOrderByOpQueryHandler) Handle(ctx context.Context, query GetOrderByOpQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelect+` WHERE o.op = ?`, query.Op()).
		Scan(&rows).Error
	if err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("op", query.Op())
	}

	return rows[0].toView(h.now())
}
