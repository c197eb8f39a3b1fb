package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListModulesQueryHandler serves both the full module list and the name search.
type ListModulesQueryHandler struct {
	db *gorm.DB
}

func NewListModulesQueryHandler(db *gorm.DB) ListModulesQueryHandler {
	return ListModulesQueryHandler{db: db}
}

func (h ListModulesQueryHandler) Handle(ctx context.Context, query ListModulesQuery) ([]ModuleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.list(ctx, "")
}

func (h ListModulesQueryHandler) FindByName(ctx context.Context, query FindModulesByNameQuery) ([]ModuleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.list(ctx, query.Fragment())
}

func (h ListModulesQueryHandler) list(ctx context.Context, fragment string) ([]ModuleView, error) {
	sql := moduleSelect
	var args []any
	if fragment != "" {
		sql += ` WHERE m.name ILIKE ?`
		args = append(args, containsPattern(fragment))
	}

	rows, err := h.db.WithContext(ctx).Raw(sql+` ORDER BY m.name`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []moduleRow
	for rows.Next() {
		var row moduleRow
		if err = h.db.ScanRows(rows, &row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return toModuleViews(result)
}
