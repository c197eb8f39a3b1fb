package postgres

import (
	"context"

	"workload/internal/adapters/out/postgres/modulerepo"
	"workload/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the modules and orders tables.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&modulerepo.ModuleDTO{}, &orderrepo.OrderDTO{})
}
