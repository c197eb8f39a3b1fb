package modulerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormModuleRepository implements ports.ModuleRepository using GORM.
type GormModuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormModuleRepository(db *gorm.DB, tracker aggregateTracker) *GormModuleRepository {
	return &GormModuleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormModuleRepository) Add(ctx context.Context, aggregate *module.Module) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(aggregate, err)
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the module if the stored version still matches. Aggregate load changes
// caused by order writes go through here too, so two commands touching the same module
// cannot both commit a stale total.
func (r *GormModuleRepository) Update(ctx context.Context, aggregate *module.Module) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	result := r.db.WithContext(ctx).
		Model(&ModuleDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return translateWriteError(aggregate, result.Error)
	}

	if result.RowsAffected == 0 {
		var stored ModuleDTO
		err := r.db.WithContext(ctx).Select("version").First(&stored, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("module", aggregate.ID().String())
		}
		if err != nil {
			return err
		}
		return errs.NewConcurrentUpdateErrorWithCause(
			"module", aggregate.ID().String(),
			fmt.Errorf("expected version %d, stored version is %d", aggregate.Version(), stored.Version),
		)
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormModuleRepository) Get(ctx context.Context, id kernel.UUID) (*module.Module, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ModuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("module", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormModuleRepository) GetAll(ctx context.Context) ([]*module.Module, error) {
	var dtos []ModuleDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	modules := make([]*module.Module, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func (r *GormModuleRepository) ExistsByName(ctx context.Context, name string, excluding *kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&ModuleDTO{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excluding != nil {
		query = query.Where("id <> ?", excluding.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateWriteError(aggregate *module.Module, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), err)
	}
	return err
}
