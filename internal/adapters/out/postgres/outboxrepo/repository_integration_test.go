package outboxrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/outboxrepo"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/outbox"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OutboxRepositoryIntegrationTestSuite provides integration tests for OutboxRepository
// using PostgreSQL containers to verify database persistence behavior.
type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
	tracker    *MockAggregateTracker
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&outboxrepo.RecordDTO{})
	suite.Require().NoError(err)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE outbox CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db, suite.tracker)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_PersistsRecord() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()

	err := suite.repository.Add(ctx, record)

	suite.Require().NoError(err)
	var count int64
	suite.Require().NoError(suite.db.Model(&outboxrepo.RecordDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsPersistenceError() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	err := suite.repository.Add(ctx, record)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrPersistence)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetPending_RoundTripsAllFields() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.ID(), record).Once()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	pending, err := suite.repository.GetPending(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	retrieved := pending[0]
	suite.True(retrieved.ID().IsEqual(record.ID()))
	suite.JSONEq(string(record.Payload()), string(retrieved.Payload()))
	suite.Equal(record.CorrelationID(), retrieved.CorrelationID())
	suite.Equal("OrderCreated", retrieved.EventType())
	suite.Equal(outbox.Pending, retrieved.Status())
	suite.Zero(retrieved.Attempts())
	suite.Nil(retrieved.SentAt())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetPending_ExcludesSentAndFailed() {
	ctx := context.Background()

	sent := suite.createTestRecord()
	suite.Require().NoError(sent.MarkSent())

	failed := suite.createTestRecord()
	for range outbox.MaxAttempts {
		suite.Require().NoError(failed.MarkFailed(errors.New("broker unavailable")))
	}

	pendingRecord := suite.createTestRecord()

	for _, record := range []*outbox.Record{sent, failed, pendingRecord} {
		suite.tracker.On("TrackAggregate", record.ID(), record).Once()
		suite.Require().NoError(suite.repository.Add(ctx, record))
	}

	pending, err := suite.repository.GetPending(ctx, 10)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(pendingRecord.ID()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetPending_RespectsLimitAndCreationOrder() {
	ctx := context.Background()

	first := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// later records get strictly later timestamps
	suite.Require().NoError(
		suite.db.Model(&outboxrepo.RecordDTO{}).
			Where("id = ?", first.ID().Bytes()).
			Update("created_at", time.Now().UTC().Add(-time.Minute)).Error)

	second := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()
	suite.Require().NoError(suite.repository.Add(ctx, second))

	pending, err := suite.repository.GetPending(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(first.ID()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestUpdate_PersistsSentOutcome() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	suite.Require().NoError(record.MarkSent())
	err := suite.repository.Update(ctx, record)

	suite.Require().NoError(err)
	pending, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)

	var dto outboxrepo.RecordDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", record.ID().Bytes()).Error)
	suite.Equal(int(outbox.Sent), dto.Status)
	suite.NotNil(dto.SentAt)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestUpdate_PersistsFailedAttempt() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.tracker.On("TrackAggregate", record.ID(), record).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, record))

	suite.Require().NoError(record.MarkFailed(errors.New("broker unavailable")))
	err := suite.repository.Update(ctx, record)

	suite.Require().NoError(err)
	pending, err := suite.repository.GetPending(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(1, pending[0].Attempts())
	suite.Equal("broker unavailable", pending[0].LastError())
	suite.Equal(outbox.Pending, pending[0].Status())
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestUpdate_UnknownRecord_ReturnsError() {
	ctx := context.Background()
	record := suite.createTestRecord()
	suite.Require().NoError(record.MarkSent())

	err := suite.repository.Update(ctx, record)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// createTestRecord creates a pending outbox record with a valid payload.
func (suite *OutboxRepositoryIntegrationTestSuite) createTestRecord() *outbox.Record {
	orderID := kernel.NewUUID()
	payload := []byte(`{"orderId":"` + orderID.String() +
		`","customer":"Ana Silva","product":"Widget","amount":19.9,"eventType":"OrderCreated"}`)
	record, err := outbox.NewRecord(kernel.NewUUID(), payload, orderID.String(), "OrderCreated")
	suite.Require().NoError(err)
	return record
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
