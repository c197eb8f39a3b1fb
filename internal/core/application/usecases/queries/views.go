// Package queries contains the read side of the application layer. Handlers read the tables
// directly through gorm and never load aggregates for writing.
package queries

import (
	"strings"
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderView is the read model of an order including the values derived for display.
type OrderView struct {
	ID                 kernel.UUID
	Op                 string
	Price              decimal.Decimal
	TotalPrice         decimal.Decimal
	Quantity           int
	SizeBreakdown      map[string]int
	QuantityMade       int
	Missing            int
	DeliveryPercentage float64
	Sam                *float64
	SamTotal           *int
	LoadDays           kernel.LoadDays
	Status             order.Status
	StoppageReason     order.StoppageReason
	Reference          string
	Brand              string
	Campaign           string
	Type               string
	Description        string
	AssignedDate       time.Time
	PlantEntryDate     *time.Time
	ActualDeliveryDate string
	CycleDays          int
	ModuleID           *kernel.UUID
	ModuleName         string
	CreatedBy          string
	UpdatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

// ModuleView is the read model of a module with the number of orders it carries.
type ModuleView struct {
	ID                kernel.UUID
	Name              string
	Description       string
	NumPersons        int
	AggregateLoadDays kernel.LoadDays
	OrderCount        int
	Version           int64
}

const orderSelect = `
	SELECT
		o.id, o.op, o.price, o.quantity, o.size_breakdown, o.quantity_made, o.missing,
		o.sam, o.sam_total, o.load_days, o.status, o.stoppage_reason, o.reference, o.brand,
		o.campaign, o.type, o.description, o.assigned_date, o.plant_entry_date,
		o.actual_delivery_date, o.module_id, COALESCE(m.name, '') AS module_name,
		o.created_by, o.updated_by, o.created_at, o.updated_at, o.version
	FROM orders o
	LEFT JOIN modules m ON m.id = o.module_id`

const moduleSelect = `
	SELECT
		m.id, m.name, m.description, m.num_persons, m.aggregate_load_days, m.version,
		(SELECT COUNT(*) FROM orders o WHERE o.module_id = m.id) AS order_count
	FROM modules m`

type orderRow struct {
	ID                 uuid.UUID
	Op                 string
	Price              decimal.Decimal
	Quantity           int
	SizeBreakdown      datatypes.JSONType[map[string]int]
	QuantityMade       int
	Missing            int
	Sam                *float64
	SamTotal           *int
	LoadDays           decimal.Decimal
	Status             string
	StoppageReason     string
	Reference          string
	Brand              string
	Campaign           string
	Type               string
	Description        string
	AssignedDate       time.Time
	PlantEntryDate     *time.Time
	ActualDeliveryDate string
	ModuleID           *uuid.UUID
	ModuleName         string
	CreatedBy          string
	UpdatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

// toView rebuilds the order to derive totals, percentages and cycle days the same way the
// domain does.
func (r orderRow) toView(now time.Time) (OrderView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderView{}, err
	}

	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderView{}, err
	}
	reason, err := order.ParseStoppageReason(r.StoppageReason)
	if err != nil {
		return OrderView{}, err
	}
	load, err := kernel.NewLoadDays(r.LoadDays)
	if err != nil {
		return OrderView{}, err
	}

	var moduleID *kernel.UUID
	if r.ModuleID != nil {
		mid, idErr := kernel.UUIDFromBytes(r.ModuleID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		moduleID = &mid
	}

	o, err := order.RestoreOrder(id, order.Details{
		Op:                 r.Op,
		Price:              r.Price,
		AssignedDate:       r.AssignedDate,
		PlantEntryDate:     r.PlantEntryDate,
		Reference:          r.Reference,
		Brand:              r.Brand,
		Campaign:           r.Campaign,
		Type:               r.Type,
		Description:        r.Description,
		ActualDeliveryDate: r.ActualDeliveryDate,
		Sam:                r.Sam,
		Status:             status,
		StoppageReason:     reason,
	}, order.State{
		Quantity:      r.Quantity,
		SizeBreakdown: r.SizeBreakdown.Data(),
		QuantityMade:  r.QuantityMade,
		LoadDays:      load,
		ModuleID:      moduleID,
		CreatedBy:     r.CreatedBy,
		UpdatedBy:     r.UpdatedBy,
		Version:       r.Version,
	})
	if err != nil {
		return OrderView{}, err
	}

	d := o.Details()
	return OrderView{
		ID:                 o.ID(),
		Op:                 d.Op,
		Price:              d.Price,
		TotalPrice:         o.TotalPrice(),
		Quantity:           o.Quantity(),
		SizeBreakdown:      o.SizeBreakdown(),
		QuantityMade:       o.QuantityMade(),
		Missing:            o.Missing(),
		DeliveryPercentage: o.DeliveryPercentage(),
		Sam:                o.Sam(),
		SamTotal:           o.SamTotal(),
		LoadDays:           o.LoadDays(),
		Status:             d.Status,
		StoppageReason:     d.StoppageReason,
		Reference:          d.Reference,
		Brand:              d.Brand,
		Campaign:           d.Campaign,
		Type:               d.Type,
		Description:        d.Description,
		AssignedDate:       d.AssignedDate,
		PlantEntryDate:     d.PlantEntryDate,
		ActualDeliveryDate: d.ActualDeliveryDate,
		CycleDays:          o.CycleDays(now),
		ModuleID:           o.ModuleID(),
		ModuleName:         r.ModuleName,
		CreatedBy:          o.CreatedBy(),
		UpdatedBy:          o.UpdatedBy(),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		Version:            o.Version(),
	}, nil
}

func toOrderViews(rows []orderRow, now time.Time) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView(now)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

type moduleRow struct {
	ID                uuid.UUID
	Name              string
	Description       string
	NumPersons        int
	AggregateLoadDays decimal.Decimal
	OrderCount        int
	Version           int64
}

func (r moduleRow) toView() (ModuleView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ModuleView{}, err
	}
	load, err := kernel.NewLoadDays(r.AggregateLoadDays)
	if err != nil {
		return ModuleView{}, err
	}
	return ModuleView{
		ID:                id,
		Name:              r.Name,
		Description:       r.Description,
		NumPersons:        r.NumPersons,
		AggregateLoadDays: load,
		OrderCount:        r.OrderCount,
		Version:           r.Version,
	}, nil
}

func toModuleViews(rows []moduleRow) ([]ModuleView, error) {
	views := make([]ModuleView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
