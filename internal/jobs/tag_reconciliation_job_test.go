package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"
	"laundrytrack/internal/core/ports"
	"laundrytrack/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllWithTag(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllCompletedWithTag(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTag(t *testing.T, value string) kernel.TagID {
	t.Helper()
	tag, err := kernel.NewTagID(value)
	require.NoError(t, err)
	return tag
}

func completedOrderWithTag(t *testing.T, tag kernel.TagID) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrderWithTag(
		kernel.NewUUID(), kernel.NewUUID(), "R-01", tag, order.StatusReadyForPickup)
	require.NoError(t, err)
	require.NoError(t, aggregate.Complete(order.PermissiveTransitions()))
	return aggregate
}

func newJobFixture(active, completed []*order.Order) *MockOrderUoWFactory {
	repo := new(MockOrderRepository)
	repo.On("GetAllWithTag", mock.Anything).Return(active, nil).Once()
	repo.On("GetAllCompletedWithTag", mock.Anything).Return(completed, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestTagReconciliationJob_Run_ReleasesStrandedTag(t *testing.T) {
	tag := mustTag(t, "TAG-001")
	pool := services.NewTagPool([]kernel.TagID{tag})
	require.NoError(t, pool.Reserve(tag)) // stuck in use after a failed release

	stranded := completedOrderWithTag(t, tag)
	factory := newJobFixture(nil, []*order.Order{stranded})

	job := jobs.NewTagReconciliationJob(factory, pool, discardLogger())
	require.NoError(t, job.Run(t.Context()))

	assert.True(t, pool.IsAvailable(tag))
}

func TestTagReconciliationJob_Run_SkipsTagHeldByActiveOrder(t *testing.T) {
	tag := mustTag(t, "TAG-001")
	pool := services.NewTagPool([]kernel.TagID{tag})
	require.NoError(t, pool.Reserve(tag))

	// the tag was properly released after completion and then acquired again
	active, err := order.NewOrderWithTag(
		kernel.NewUUID(), kernel.NewUUID(), "W-01", tag, order.StatusYetToWash)
	require.NoError(t, err)
	completed := completedOrderWithTag(t, tag)

	factory := newJobFixture([]*order.Order{active}, []*order.Order{completed})

	job := jobs.NewTagReconciliationJob(factory, pool, discardLogger())
	require.NoError(t, job.Run(t.Context()))

	assert.False(t, pool.IsAvailable(tag))
}

func TestTagReconciliationJob_Run_SkipsAlreadyAvailableTag(t *testing.T) {
	tag := mustTag(t, "TAG-001")
	pool := services.NewTagPool([]kernel.TagID{tag})

	completed := completedOrderWithTag(t, tag)
	factory := newJobFixture(nil, []*order.Order{completed})

	job := jobs.NewTagReconciliationJob(factory, pool, discardLogger())
	require.NoError(t, job.Run(t.Context()))

	assert.Equal(t, 1, pool.AvailableCount())
}

func TestTagReconciliationJob_Run_RepositoryError(t *testing.T) {
	pool := services.NewTagPool(nil)

	repo := new(MockOrderRepository)
	repo.On("GetAllWithTag", mock.Anything).Return(nil, errors.New("db down")).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	job := jobs.NewTagReconciliationJob(factory, pool, discardLogger())
	require.Error(t, job.Run(t.Context()))
}
