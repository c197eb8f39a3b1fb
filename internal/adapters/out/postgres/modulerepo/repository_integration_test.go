package modulerepo_test

import (
	"context"
	"testing"

	"workload/internal/adapters/out/postgres/modulerepo"
	"workload/internal/adapters/out/postgres/pgtest"
	"workload/internal/core/domain/model/kernel"
	"workload/internal/core/domain/model/module"
	"workload/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type ModuleRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	db         *gorm.DB
	repository *modulerepo.GormModuleRepository
}

func (suite *ModuleRepositoryIntegrationTestSuite) SetupSuite() {
	pgtest.SkipIfShort(suite.T())

	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.db = database.DB

	suite.Require().NoError(suite.db.AutoMigrate(&modulerepo.ModuleDTO{}))
}

func (suite *ModuleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE modules").Error)
	suite.repository = modulerepo.NewGormModuleRepository(suite.db, noopTracker{})
}

func (suite *ModuleRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	m := suite.createModule("Línea 1", 4)
	m.AddLoad(kernel.MustLoadDays("3.50"))

	suite.Require().NoError(suite.repository.Add(ctx, m))

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("Línea 1", stored.Name())
	suite.Equal(4, stored.NumPersons())
	suite.Equal("3.50", stored.AggregateLoadDays().String())
	suite.Equal(int64(1), stored.Version())
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createModule("M1", 1)))

	err := suite.repository.Add(ctx, suite.createModule("M1", 2))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentUpdate() {
	ctx := context.Background()
	m := suite.createModule("M1", 2)
	suite.Require().NoError(suite.repository.Add(ctx, m))

	first, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)

	first.AddLoad(kernel.MustLoadDays("1.00"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	second.AddLoad(kernel.MustLoadDays("2.00"))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal("1.00", stored.AggregateLoadDays().String())
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestUpdate_ZeroHeadcountIsWritten() {
	ctx := context.Background()
	m := suite.createModule("M1", 2)
	suite.Require().NoError(suite.repository.Add(ctx, m))

	suite.Require().NoError(m.SetNumPersons(0))
	suite.Require().NoError(suite.repository.Update(ctx, m))

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(0, stored.NumPersons())
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createModule("Beta", 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createModule("Alpha", 1)))

	modules, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(modules, 2)
	suite.Equal("Alpha", modules[0].Name())
}

func (suite *ModuleRepositoryIntegrationTestSuite) TestExistsByName_IgnoresCase() {
	ctx := context.Background()
	m := suite.createModule("Corte", 1)
	suite.Require().NoError(suite.repository.Add(ctx, m))

	exists, err := suite.repository.ExistsByName(ctx, "  CORTE ", nil)
	suite.Require().NoError(err)
	suite.True(exists)

	id := m.ID()
	exists, err = suite.repository.ExistsByName(ctx, "corte", &id)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ModuleRepositoryIntegrationTestSuite) createModule(name string, persons int) *module.Module {
	m, err := module.NewModule(kernel.NewUUID(), name, "", persons)
	suite.Require().NoError(err)
	return m
}

func TestModuleRepositoryIntegrationTestSuite(t *testing.T) {
	pgtest.SkipIfShort(t)
	suite.Run(t, new(ModuleRepositoryIntegrationTestSuite))
}
