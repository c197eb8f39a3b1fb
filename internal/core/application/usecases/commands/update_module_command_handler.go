package commands

import (
	"context"
	"strings"

	"workload/internal/core/domain/model/module"
	"workload/internal/core/ports"
	"workload/internal/pkg/errs"
)

type UpdateModuleCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateModuleCommandHandler(uowFactory UoWFactory) UpdateModuleCommandHandler {
	return UpdateModuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle renames, re-describes or re-staffs a module. After a headcount change every order of
// the module gets its load recomputed and the aggregate is rebuilt from the new loads, all in
// one transaction.
func (h UpdateModuleCommandHandler) Handle(ctx context.Context, cmd UpdateModuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moduleRepo := uow.ModuleRepository()
	m, err := moduleRepo.Get(ctx, cmd.ModuleID())
	if err != nil {
		return err
	}

	if cmd.ExpectedVersion() > 0 {
		if err = m.CheckVersion(cmd.ExpectedVersion()); err != nil {
			return err
		}
	}

	if err = h.rename(ctx, moduleRepo, m, cmd.Name()); err != nil {
		return err
	}

	if d := cmd.Description(); d != nil {
		if err = m.Describe(*d); err != nil {
			return err
		}
	}

	if n := cmd.NumPersons(); n != nil && *n != m.NumPersons() {
		if err = m.SetNumPersons(*n); err != nil {
			return err
		}
		if _, _, err = rebalanceModule(ctx, uow.OrderRepository(), m); err != nil {
			return err
		}
	}

	if err = moduleRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h UpdateModuleCommandHandler) rename(
	ctx context.Context,
	repo ports.ModuleRepository,
	m *module.Module,
	name *string,
) error {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if !strings.EqualFold(trimmed, m.Name()) {
		id := m.ID()
		exists, err := repo.ExistsByName(ctx, trimmed, &id)
		if err != nil {
			return err
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("name", trimmed)
		}
	}
	return m.Rename(trimmed)
}
