package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "brewery/internal/adapters/out/postgres"
	"brewery/internal/adapters/out/postgres/beerorderrepo"
	"brewery/internal/adapters/out/postgres/beerrepo"
	"brewery/internal/adapters/out/postgres/customerrepo"
	"brewery/internal/core/domain/model/beer"
	"brewery/internal/core/domain/model/beerorder"
	"brewery/internal/core/ports"
	"brewery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work against a real
// PostgreSQL database: transaction lifecycle, atomicity of order placement and
// isolation between instances.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&beerrepo.BeerDTO{},
		&customerrepo.CustomerDTO{},
		&beerorderrepo.BeerOrderDTO{},
		&beerorderrepo.BeerOrderLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE beers, customers, beer_orders, beer_order_lines").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) seedBeer(name string) *beer.Beer {
	b, err := beer.NewBeer(name, "IPA", uuid.NewString(), 100, decimal.NewFromFloat(12.99))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BeerRepository().Add(ctx, b))
	suite.Require().NoError(uow.Commit(ctx))
	return b
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.BeerOrderRepository())
	suite.NotNil(uow1.BeerRepository())
	suite.NotNil(uow2.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// repeated begin is a no-op, never a nested transaction
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderPlacement_ReadsOwnWritesBeforeCommit() {
	ctx := context.Background()
	b := suite.seedBeer("Galaxy Cat")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	order, err := beerorder.NewBeerOrder("customer-123")
	suite.Require().NoError(err)
	suite.Require().NoError(order.AddLine(b, 2))

	suite.Require().NoError(uow.BeerOrderRepository().Add(ctx, order))

	// the eager re-read sees the uncommitted insert within the same tx
	loaded, err := uow.BeerOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Lines(), 1)

	suite.Require().NoError(uow.Commit(ctx))

	committed, err := suite.factory.Create().BeerOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ID(), committed.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_LeavesNoPartialOrder() {
	ctx := context.Background()
	b := suite.seedBeer("Crank")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	order, err := beerorder.NewBeerOrder("customer-456")
	suite.Require().NoError(err)
	suite.Require().NoError(order.AddLine(b, 1))

	suite.Require().NoError(uow.BeerOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().BeerOrderRepository().Get(ctx, order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lineCount int64
	suite.Require().NoError(suite.db.Model(&beerorderrepo.BeerOrderLineDTO{}).Count(&lineCount).Error)
	suite.Zero(lineCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsOfWork_AreIsolated() {
	ctx := context.Background()
	b := suite.seedBeer("Pinball Porter")

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	order, err := beerorder.NewBeerOrder("customer-789")
	suite.Require().NoError(err)
	suite.Require().NoError(order.AddLine(b, 3))
	suite.Require().NoError(uow1.BeerOrderRepository().Add(ctx, order))

	// uow2 must not see uow1's uncommitted order
	_, err = uow2.BeerOrderRepository().Get(ctx, order.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	_, err = suite.factory.Create().BeerOrderRepository().Get(ctx, order.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
