// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row of the orders table. missing and sam_total are stored redundantly so
// reports and searches can read them without rebuilding aggregates.
type OrderDTO struct {
	ID                 uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Op                 string                             `gorm:"size:50;not null;uniqueIndex"`
	Price              decimal.Decimal                    `gorm:"type:numeric(14,2);not null"`
	Quantity           int                                `gorm:"not null"`
	SizeBreakdown      datatypes.JSONType[map[string]int] `gorm:"type:jsonb"`
	QuantityMade       int                                `gorm:"not null;default:0"`
	Missing            int                                `gorm:"not null;default:0"`
	Sam                *float64
	SamTotal           *int
	LoadDays           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Status             string          `gorm:"size:20;not null;index"`
	StoppageReason     string          `gorm:"size:30"`
	Reference          string          `gorm:"size:50"`
	Brand              string          `gorm:"size:100"`
	Campaign           string          `gorm:"size:50;not null"`
	Type               string          `gorm:"size:50"`
	Description        string          `gorm:"size:255"`
	AssignedDate       time.Time       `gorm:"type:date;not null"`
	PlantEntryDate     *time.Time      `gorm:"type:date;index"`
	ActualDeliveryDate string          `gorm:"size:50"`
	ModuleID           *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy          string          `gorm:"size:100"`
	UpdatedBy          string          `gorm:"size:100"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64 `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()

	var moduleID *uuid.UUID
	if id := o.ModuleID(); id != nil {
		raw := id.Bytes()
		moduleID = &raw
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		Op:                 d.Op,
		Price:              d.Price,
		Quantity:           o.Quantity(),
		SizeBreakdown:      datatypes.NewJSONType(map[string]int(o.SizeBreakdown())),
		QuantityMade:       o.QuantityMade(),
		Missing:            o.Missing(),
		Sam:                o.Sam(),
		SamTotal:           o.SamTotal(),
		LoadDays:           o.LoadDays().Decimal(),
		Status:             d.Status.Code(),
		StoppageReason:     d.StoppageReason.String(),
		Reference:          d.Reference,
		Brand:              d.Brand,
		Campaign:           d.Campaign,
		Type:               d.Type,
		Description:        d.Description,
		AssignedDate:       d.AssignedDate,
		PlantEntryDate:     d.PlantEntryDate,
		ActualDeliveryDate: d.ActualDeliveryDate,
		ModuleID:           moduleID,
		CreatedBy:          o.CreatedBy(),
		UpdatedBy:          o.UpdatedBy(),
		Version:            o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var moduleID *kernel.UUID
	if dto.ModuleID != nil {
		mID, moduleErr := kernel.UUIDFromBytes((*dto.ModuleID)[:])
		if moduleErr != nil {
			return nil, moduleErr
		}
		moduleID = &mID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	reason, err := order.ParseStoppageReason(dto.StoppageReason)
	if err != nil {
		return nil, err
	}
	load, err := kernel.NewLoadDays(dto.LoadDays)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		Op:                 dto.Op,
		Price:              dto.Price,
		AssignedDate:       dto.AssignedDate,
		PlantEntryDate:     dto.PlantEntryDate,
		Reference:          dto.Reference,
		Brand:              dto.Brand,
		Campaign:           dto.Campaign,
		Type:               dto.Type,
		Description:        dto.Description,
		ActualDeliveryDate: dto.ActualDeliveryDate,
		Sam:                dto.Sam,
		Status:             status,
		StoppageReason:     reason,
	}

	return order.RestoreOrder(id, details, order.State{
		Quantity:      dto.Quantity,
		SizeBreakdown: dto.SizeBreakdown.Data(),
		QuantityMade:  dto.QuantityMade,
		LoadDays:      load,
		ModuleID:      moduleID,
		CreatedBy:     dto.CreatedBy,
		UpdatedBy:     dto.UpdatedBy,
		Version:       dto.Version,
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
