package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, now: time.Now}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).
		Raw(orderSelect + ` ORDER BY o.created_at DESC, o.id`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toOrderViews(rows, h.now())
}
