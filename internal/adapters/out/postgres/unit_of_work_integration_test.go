package postgres_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordertracking/internal/adapters/out/postgres"
	"ordertracking/internal/adapters/out/postgres/orderslot"
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the
// GORM unit of work around the order slot.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderslot.SlotDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db, slog.Default())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_slots").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsCollection() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer uow.Rollback(ctx)

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().ReplaceAll(ctx, []*order.Order{testOrder}))
	suite.Require().NoError(uow.Commit(ctx))

	// A fresh unit of work must see the committed collection
	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer verify.Rollback(ctx)

	loaded, err := verify.OrderRepository().LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(loaded, 1)
	suite.True(loaded[0].ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().ReplaceAll(ctx, []*order.Order{testOrder}))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer verify.Rollback(ctx)

	loaded, err := verify.OrderRepository().LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Empty(loaded)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsNoOp() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().ReplaceAll(ctx, []*order.Order{testOrder}))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer verify.Rollback(ctx)

	loaded, err := verify.OrderRepository().LoadAll(ctx)
	suite.Require().NoError(err)
	suite.Len(loaded, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewOrderID(), "Portable Charger", "Frank Stone", "11 Maple Drive")
	suite.Require().NoError(err)
	return o
}

// TestUnitOfWorkIntegration runs the integration test suite.
// Requires Docker to be available for PostgreSQL containers.
func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
