package commands

import (
	"context"

	"workload/internal/core/domain/model/module"
	"workload/internal/pkg/errs"
)

type CreateModuleCommandHandler struct {
	uowFactory ModuleUoWFactory
}

func NewCreateModuleCommandHandler(uowFactory ModuleUoWFactory) CreateModuleCommandHandler {
	return CreateModuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds a module with an empty aggregate. Names are unique ignoring case.
func (h CreateModuleCommandHandler) Handle(ctx context.Context, cmd CreateModuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := module.NewModule(cmd.ModuleID(), cmd.Name(), cmd.Description(), cmd.NumPersons())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	moduleRepo := uow.ModuleRepository()
	exists, err := moduleRepo.ExistsByName(ctx, m.Name(), nil)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("name", m.Name())
	}

	if err = moduleRepo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
