package commands_test

import (
	"context"
	"errors"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/outbox"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
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
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, r *outbox.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockOutboxRepository) Update(ctx context.Context, r *outbox.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]*outbox.Record, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Record), args.Error(1)
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
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockProcessedSet struct{ mock.Mock }

func (m *MockProcessedSet) Contains(ctx context.Context, correlationID string) (bool, error) {
	args := m.Called(ctx, correlationID)
	return args.Bool(0), args.Error(1)
}
func (m *MockProcessedSet) Add(ctx context.Context, correlationID string) error {
	args := m.Called(ctx, correlationID)
	return args.Error(0)
}

type MockFulfillmentService struct{ mock.Mock }

func (m *MockFulfillmentService) Fulfill(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockMessageQueue struct{ mock.Mock }

func (m *MockMessageQueue) Publish(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageQueue) Receive(_ context.Context) (*ports.Delivery, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockMessageQueue) Ack(_ context.Context, _ *ports.Delivery) error {
	return errors.New("not implemented in mock")
}
func (m *MockMessageQueue) DeadLetter(_ context.Context, _ *ports.Delivery, _ string) error {
	return errors.New("not implemented in mock")
}
