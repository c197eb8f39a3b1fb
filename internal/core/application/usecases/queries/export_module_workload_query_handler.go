package queries

import (
	"context"
	"fmt"
	"time"

	"workload/internal/core/domain/model/kernel"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const workloadSheet = "Workload"

// XLSXMediaType is the content type of a WorkloadReport.
const XLSXMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var workloadHeaders = []string{
	"Module", "Persons", "OP", "Reference", "Quantity", "Made", "Missing", "SAM", "SAM total", "Load days",
}

var workloadColumnWidths = []float64{20, 10, 12, 14, 10, 10, 10, 10, 12, 12}

type ExportModuleWorkloadQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewExportModuleWorkloadQueryHandler(db *gorm.DB) ExportModuleWorkloadQueryHandler {
	return ExportModuleWorkloadQueryHandler{db: db, now: time.Now}
}

func (h ExportModuleWorkloadQueryHandler) Handle(ctx context.Context, query ExportModuleWorkloadQuery) (WorkloadReport, error) {
	if err := query.Validate(); err != nil {
		return WorkloadReport{}, err
	}

	db := h.db.WithContext(ctx)
	now := h.now()

	var modRows []moduleRow
	if err := db.Raw(moduleSelect + ` ORDER BY m.name`).Scan(&modRows).Error; err != nil {
		return WorkloadReport{}, err
	}
	modules, err := toModuleViews(modRows)
	if err != nil {
		return WorkloadReport{}, err
	}

	var ordRows []orderRow
	if err = db.Raw(orderSelect + ` WHERE o.module_id IS NOT NULL ORDER BY o.created_at, o.id`).
		Scan(&ordRows).Error; err != nil {
		return WorkloadReport{}, err
	}
	orders, err := toOrderViews(ordRows, now)
	if err != nil {
		return WorkloadReport{}, err
	}

	byModule := make(map[kernel.UUID][]OrderView, len(modules))
	for _, o := range orders {
		byModule[*o.ModuleID] = append(byModule[*o.ModuleID], o)
	}

	f, err := buildWorkloadWorkbook(modules, byModule)
	if err != nil {
		return WorkloadReport{}, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return WorkloadReport{}, fmt.Errorf("write workload workbook: %w", err)
	}

	return WorkloadReport{
		Filename: fmt.Sprintf("workload_%s.xlsx", now.Format("20060102")),
		Content:  buf.Bytes(),
	}, nil
}

// buildWorkloadWorkbook writes one block per module: its orders followed by a bold total row
// carrying the module's stored aggregate.
func buildWorkloadWorkbook(modules []ModuleView, orders map[kernel.UUID][]OrderView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", workloadSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := sheetWriter{f: f, sheet: workloadSheet}
	w.row(headerStyle, toCells(workloadHeaders)...)

	for _, m := range modules {
		for _, o := range orders[m.ID] {
			w.row(0,
				m.Name, m.NumPersons, o.Op, o.Reference, o.Quantity, o.QuantityMade, o.Missing,
				optional(o.Sam), optional(o.SamTotal), o.LoadDays.Decimal().InexactFloat64(),
			)
		}
		w.row(totalStyle,
			"Total "+m.Name, m.NumPersons, fmt.Sprintf("%d orders", len(orders[m.ID])),
			nil, nil, nil, nil, nil, nil, m.AggregateLoadDays.Decimal().InexactFloat64(),
		)
	}

	for i, width := range workloadColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetColWidth(workloadSheet, col, col, width); err != nil {
			w.err = err
		}
	}

	if w.err != nil {
		_ = f.Close()
		return nil, w.err
	}
	return f, nil
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	next  int
	err   error
}

func (w *sheetWriter) row(style int, values ...any) {
	if w.err != nil {
		return
	}
	w.next++

	first, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err = w.f.SetSheetRow(w.sheet, first, &values); err != nil {
		w.err = err
		return
	}
	if style == 0 {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(values), w.next)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, first, last, style)
}

func toCells(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
