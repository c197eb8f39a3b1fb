package postgres_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "workload/internal/adapters/out/postgres"
	"workload/internal/adapters/out/postgres/pgtest"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/core/domain/model/order"
	"workload/internal/core/ports"
	"workload/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	db       *gorm.DB
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pgtest.SkipIfShort(suite.T())
	ctx := context.Background()

	database, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.database = database
	suite.db = database.DB

	suite.Require().NoError(postgres_adapter.AutoMigrate(ctx, suite.db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, slog.Default())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, modules").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ModuleRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Error(uow.Commit(ctx), "commit without active transaction")
	suite.Error(uow.Rollback(ctx), "rollback without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitsOrderAndModuleTogether() {
	ctx := context.Background()
	m := suite.createModule()
	o := suite.createOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ModuleRepository().Add(ctx, m))
	suite.Require().NoError(o.AssignModule(m.ID()))
	o.ApplyLoad(kernel.MustLoadDays("0.75"))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	m.AddLoad(o.LoadDays())
	suite.Require().NoError(uow.ModuleRepository().Update(ctx, m))
	suite.Equal(3, uow.(*postgres_adapter.GormUnitOfWork).TrackedCount())
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.ModuleRepository().Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("0.75", stored.AggregateLoadDays().String())

	orders, err := reader.OrderRepository().GetByModule(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Len(orders, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsModuleUpdate() {
	ctx := context.Background()
	m := suite.createModule()
	setup := suite.factory.Create()
	suite.Require().NoError(setup.ModuleRepository().Add(ctx, m))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	m.AddLoad(kernel.MustLoadDays("5.00"))
	suite.Require().NoError(uow.ModuleRepository().Update(ctx, m))

	duplicate := suite.createOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, duplicate))
	err := uow.OrderRepository().Add(ctx, suite.createOrder())
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().ModuleRepository().Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.True(stored.AggregateLoadDays().IsZero())
	suite.Equal(int64(1), stored.Version())

	var count int64
	suite.Require().NoError(suite.db.Table("orders").Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createModule() *module.Module {
	m, err := module.NewModule(kernel.NewUUID(), "M1", "", 2)
	suite.Require().NoError(err)
	return m
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder() *order.Order {
	sam := 1.0
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Op:           "1001",
		Price:        decimal.NewFromInt(5),
		AssignedDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Campaign:     "1",
		Sam:          &sam,
	}, 0, map[string]int{"U": 10}, "planner")
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	pgtest.SkipIfShort(t)
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
