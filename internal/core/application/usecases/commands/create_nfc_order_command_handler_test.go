package commands_test

import (
	"errors"
	"testing"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustPoolTag(t *testing.T, value string) kernel.TagID {
	t.Helper()
	tag, err := kernel.NewTagID(value)
	require.NoError(t, err)
	return tag
}

func TestCreateNfcOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "W-01", order.StatusYetToWash)

	pool := services.NewTagPool([]kernel.TagID{mustPoolTag(t, "TAG-001")})

	var saved *order.Order
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateNfcOrderCommandHandler(factory, pool, nil, nil)
	tag, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "TAG-001", tag.String())

	require.NotNil(t, saved)
	require.NotNil(t, saved.Tag())
	assert.Equal(t, "TAG-001", saved.Tag().String())
	assert.Equal(t, 0, pool.AvailableCount())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateNfcOrderCommandHandler_Handle_PoolExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "W-01", order.StatusYetToWash)

	pool := services.NewTagPool(nil)
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateNfcOrderCommandHandler(factory, pool, nil, nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrPoolExhausted)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateNfcOrderCommandHandler_Handle_AddErrorReleasesTag(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "W-01", order.StatusYetToWash)

	pool := services.NewTagPool([]kernel.TagID{mustPoolTag(t, "TAG-001")})

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateNfcOrderCommandHandler(factory, pool, nil, nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	// compensation returned the tag to the pool
	assert.Equal(t, 1, pool.AvailableCount())
	assert.True(t, pool.IsAvailable(mustPoolTag(t, "TAG-001")))
}

func TestCreateNfcOrderCommandHandler_Handle_CommitErrorReleasesTag(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateNfcOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "W-01", order.StatusYetToWash)

	pool := services.NewTagPool([]kernel.TagID{mustPoolTag(t, "TAG-001")})

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateNfcOrderCommandHandler(factory, pool, nil, nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, 1, pool.AvailableCount())
}
