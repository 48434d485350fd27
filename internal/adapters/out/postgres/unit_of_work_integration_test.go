package postgres_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/adapters/out/postgres/outboxrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that the unit of work commits and
// rolls back the order and outbox tables atomically.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &outboxrepo.RecordDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndOutboxTogether() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCounts(1, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndOutboxTogether() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, record))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCounts(0, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChanges_InvisibleToOtherConnections() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, record))

	// a second unit of work on the main connection must not see the rows
	other := suite.factory.Create()
	_, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err)

	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := other.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(testOrder))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	testOrder, record := suite.createOrderWithRecord()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.OutboxRepository().Add(ctx, record))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCounts(1, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrderWithRecord() (*order.Order, *outbox.Record) {
	testOrder, err := order.NewOrder(kernel.NewUUID(), "Ana Silva", "Widget", 19.90)
	suite.Require().NoError(err)

	payload := []byte(`{"orderId":"` + testOrder.ID().String() +
		`","customer":"Ana Silva","product":"Widget","amount":19.9,"eventType":"OrderCreated"}`)
	record, err := outbox.NewRecord(kernel.NewUUID(), payload, testOrder.ID().String(), "OrderCreated")
	suite.Require().NoError(err)

	return testOrder, record
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCounts(orders, records int) {
	var orderCount, recordCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&outboxrepo.RecordDTO{}).Count(&recordCount).Error)
	suite.Equal(int64(orders), orderCount)
	suite.Equal(int64(records), recordCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
