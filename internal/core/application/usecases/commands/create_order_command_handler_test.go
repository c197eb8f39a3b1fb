package commands_test

import (
	"errors"
	"testing"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_WithModule(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	m := storedModule(t, 2, "1.00")
	moduleID := m.ID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), &moduleID, "planner")
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("ExistsByOp", ctx, "1001", mock.Anything).Return(false, nil).Once(),
		f.modules.On("Get", ctx, moduleID).Return(m, nil).Once(),
		f.orders.On("Add", ctx, hasLoad("0.75")).Return(nil).Once(),
		f.modules.On("Update", ctx, hasAggregate(m, "1.75")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WithoutModule(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), nil, "planner")
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("ExistsByOp", ctx, "1001", mock.Anything).Return(false, nil).Once(),
		f.orders.On("Add", ctx, hasLoad("0.00")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	f.modules.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateOp(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), nil, "planner")
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("ExistsByOp", ctx, "1001", mock.Anything).Return(true, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownModule(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	moduleID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), &moduleID, "planner")
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("ExistsByOp", ctx, "1001", mock.Anything).Return(false, nil).Once(),
		f.modules.On("Get", ctx, moduleID).Return(nil, errs.NewObjectNotFoundError("module", moduleID)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidOrder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	details := testDetails()
	details.Op = "OP-1"

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), details, 0, testSizes(), nil, "planner")
	require.NoError(t, err)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValidation)
	f.factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), nil, "planner")
	require.NoError(t, err)

	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), testDetails(), 0, testSizes(), nil, "planner")
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("ExistsByOp", ctx, "1001", mock.Anything).Return(false, nil).Once(),
		f.orders.On("Add", ctx, mock.Anything).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newFixture()

	err := commands.NewCreateOrderCommandHandler(f.factory).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	assert.Empty(t, f.factory.Calls)
}
