package commands

import (
	"context"
)

// SetModuleHeadcountCommandHandler is the headcount-only form of UpdateModuleCommandHandler.
type SetModuleHeadcountCommandHandler struct {
	update UpdateModuleCommandHandler
}

func NewSetModuleHeadcountCommandHandler(uowFactory UoWFactory) SetModuleHeadcountCommandHandler {
	return SetModuleHeadcountCommandHandler{
		update: NewUpdateModuleCommandHandler(uowFactory),
	}
}

func (h SetModuleHeadcountCommandHandler) Handle(ctx context.Context, cmd SetModuleHeadcountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	numPersons := cmd.NumPersons()
	update, err := NewUpdateModuleCommand(cmd.ModuleID(), nil, nil, &numPersons, cmd.ExpectedVersion())
	if err != nil {
		return err
	}
	return h.update.Handle(ctx, update)
}
