// Package modulerepo maps module aggregates to the modules table.
package modulerepo

import (
	"time"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ModuleDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"size:100;not null;uniqueIndex"`
	Description       string          `gorm:"size:255"`
	NumPersons        int             `gorm:"not null;default:0"`
	AggregateLoadDays decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Version           int64 `gorm:"not null;default:0"`
}

func (ModuleDTO) TableName() string {
	return "modules"
}

func fromDomain(m *module.Module) ModuleDTO {
	return ModuleDTO{
		ID:                m.ID().Bytes(),
		Name:              m.Name(),
		Description:       m.Description(),
		NumPersons:        m.NumPersons(),
		AggregateLoadDays: m.AggregateLoadDays().Decimal(),
		Version:           m.Version(),
	}
}

func toDomain(dto ModuleDTO) (*module.Module, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	load, err := kernel.NewLoadDays(dto.AggregateLoadDays)
	if err != nil {
		return nil, err
	}

	return module.RestoreModule(id, dto.Name, dto.Description, dto.NumPersons, load, dto.Version)
}
