package commands_test

import (
	"context"
	"testing"
	"time"

	"workload/internal/core/application/usecases/commands"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"
	"workload/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOp(ctx context.Context, op string) (*order.Order, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOp(ctx context.Context, op string, excluding *kernel.UUID) (bool, error) {
	args := m.Called(ctx, op, excluding)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetByModule(ctx context.Context, moduleID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, moduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockModuleRepository struct{ mock.Mock }

func (m *MockModuleRepository) Add(ctx context.Context, mod *module.Module) error {
	args := m.Called(ctx, mod)
	return args.Error(0)
}

func (m *MockModuleRepository) Update(ctx context.Context, mod *module.Module) error {
	args := m.Called(ctx, mod)
	return args.Error(0)
}

func (m *MockModuleRepository) Get(ctx context.Context, id kernel.UUID) (*module.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*module.Module), args.Error(1)
}

func (m *MockModuleRepository) GetAll(ctx context.Context) ([]*module.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*module.Module), args.Error(1)
}

func (m *MockModuleRepository) ExistsByName(ctx context.Context, name string, excluding *kernel.UUID) (bool, error) {
	args := m.Called(ctx, name, excluding)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ModuleRepository() ports.ModuleRepository {
	args := m.Called()
	return args.Get(0).(ports.ModuleRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockModuleUoWFactory struct{ mock.Mock }

func (m *MockModuleUoWFactory) Create() commands.ModuleUoW {
	args := m.Called()
	return args.Get(0).(commands.ModuleUoW)
}

// fixture wires one unit of work with both repositories. Repository accessors may be called
// any number of times; the interesting calls are declared per test.
type fixture struct {
	orders  *MockOrderRepository
	modules *MockModuleRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

func newFixture() fixture {
	f := fixture{
		orders:  new(MockOrderRepository),
		modules: new(MockModuleRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("ModuleRepository").Return(f.modules).Maybe()
	return f
}

func (f fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.modules.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

// testDetails gives 10 units at 60 standard minutes each once paired with {"S": 5, "M": 5}:
// 600 minutes, which is 0.75 days for two persons and 1.50 days for one.
func testDetails() order.Details {
	sam := 60.0
	return order.Details{
		Op:           "1001",
		Price:        decimal.RequireFromString("12.50"),
		AssignedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Campaign:     "202401",
		Sam:          &sam,
	}
}

func testSizes() map[string]int {
	return map[string]int{"S": 5, "M": 5}
}

func storedModule(t *testing.T, persons int, aggregate string) *module.Module {
	t.Helper()
	m, err := module.RestoreModule(kernel.NewUUID(), "Linea A", "", persons, kernel.MustLoadDays(aggregate), 2)
	require.NoError(t, err)
	return m
}

func storedOrder(t *testing.T, moduleID *kernel.UUID, load string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), testDetails(), order.State{
		Quantity:      10,
		SizeBreakdown: testSizes(),
		LoadDays:      kernel.MustLoadDays(load),
		ModuleID:      moduleID,
		CreatedBy:     "planner",
		UpdatedBy:     "planner",
		Version:       3,
	})
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}

func hasLoad(load string) any {
	return mock.MatchedBy(func(o *order.Order) bool {
		return o.LoadDays().String() == load
	})
}

func hasAggregate(m *module.Module, aggregate string) any {
	return mock.MatchedBy(func(got *module.Module) bool {
		return got.IsEqual(m) && got.AggregateLoadDays().String() == aggregate
	})
}
