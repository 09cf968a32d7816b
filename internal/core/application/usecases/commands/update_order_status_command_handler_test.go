package commands_test

import (
	"context"
	"errors"
	"testing"

	"laundrytrack/internal/core/application/usecases/commands"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusOrderRepository struct{ mock.Mock }

func (m *MockStatusOrderRepository) Add(_ context.Context, _ *order.Order) error { return nil }
func (m *MockStatusOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockStatusOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockStatusOrderRepository) GetAllByOwner(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) GetAllWithTag(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockStatusOrderRepository) GetAllCompletedWithTag(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func newStatusHandlerFixture(t *testing.T, aggregate *order.Order) (
	*MockStatusOrderRepository, *MockOrderUoW, *MockOrderUoWFactory,
) {
	t.Helper()
	repo := new(MockStatusOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return repo, uow, factory
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W-03")
	require.NoError(t, err)

	repo, uow, factory := newStatusHandlerFixture(t, aggregate)
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		aggregate.ID(), order.StatusWashed, "", kernel.RoleUser)
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.PermissiveTransitions(), false, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusWashed, aggregate.Status())
	assert.Equal(t, "W-03", aggregate.ShelfLocation())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Relocates(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W-03")
	require.NoError(t, err)

	repo, uow, factory := newStatusHandlerFixture(t, aggregate)
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		aggregate.ID(), order.StatusReadyForPickup, "R-07", kernel.RoleUser)
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.PermissiveTransitions(), false, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "R-07", aggregate.ShelfLocation())
}

func TestUpdateOrderStatusCommandHandler_Handle_StaffGate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.StatusWashed, "", kernel.RoleUser)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.PermissiveTransitions(), true, nil, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_StaffGateAdmitsAdmin(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "W-03")
	require.NoError(t, err)

	repo, uow, factory := newStatusHandlerFixture(t, aggregate)
	repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		aggregate.ID(), order.StatusIroning, "", kernel.RoleAdmin)
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.PermissiveTransitions(), true, nil, nil)
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestUpdateOrderStatusCommandHandler_Handle_StrictPolicyRejectsBackwards(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrderWithTag(
		kernel.NewUUID(), kernel.NewUUID(), "I-02", mustPoolTag(t, "TAG-042"), order.StatusIroning)
	require.NoError(t, err)

	_, _, factory := newStatusHandlerFixture(t, aggregate)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		aggregate.ID(), order.StatusYetToWash, "", kernel.RoleUser)
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.StrictTransitions(), false, nil, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.StatusIroning, aggregate.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_CompletedTargetRejected(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(
		kernel.NewUUID(), order.StatusCompleted, "", kernel.RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompletionViaStatusUpdate)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	repo := new(MockStatusOrderRepository)
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once()
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, order.StatusWashed, "", kernel.RoleUser)
	require.NoError(t, err)

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, order.PermissiveTransitions(), false, nil, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
