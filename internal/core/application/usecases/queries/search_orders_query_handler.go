package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SearchOrdersQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db, now: time.Now}
}

func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := containsPattern(query.Text())

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelect+`
			WHERE o.op ILIKE @p OR o.reference ILIKE @p OR o.campaign ILIKE @p OR o.brand ILIKE @p
			ORDER BY o.created_at DESC, o.id`,
			map[string]any{"p": pattern},
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderViews(rows, h.now())
}
