package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type GetOrdersByPlantEntryDateRangeQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetOrdersByPlantEntryDateRangeQueryHandler(db *gorm.DB) GetOrdersByPlantEntryDateRangeQueryHandler {
	return GetOrdersByPlantEntryDateRangeQueryHandler{db: db, now: time.Now}
}

func (h GetOrdersByPlantEntryDateRangeQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByPlantEntryDateRangeQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(orderSelect+`
			WHERE o.plant_entry_date BETWEEN ?::date AND ?::date
			ORDER BY o.plant_entry_date, o.op`,
			query.Start().Format(time.DateOnly), query.End().Format(time.DateOnly),
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toOrderViews(rows, h.now())
}
