package commands_test

import (
	"errors"
	"testing"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayAdvanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.PendingPayment)
	cmd, err := commands.NewPayAdvanceCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockOrderUoW)

	var emitted *notification.Notification
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PendingPayment).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Run(func(args mock.Arguments) {
				emitted = args.Get(1).(*notification.Notification)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayAdvanceCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// advance payment records a timestamp but does not advance the status
	require.Equal(t, order.PendingPayment, aggregate.Status())
	require.NotNil(t, aggregate.AdvancePaymentAt())
	require.Equal(t, "Sara made advance payment of $500.00", emitted.Message())

	orderRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPayAdvanceCommandHandler_Handle_SecondPaymentRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.PendingPayment)
	require.NoError(t, aggregate.PayAdvance(aggregate.CreatedAt()))

	cmd, err := commands.NewPayAdvanceCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayAdvanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrAdvanceAlreadyPaid)
	uow.AssertExpectations(t)
}

func TestPayAdvanceCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPayAdvanceCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayAdvanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPayAdvanceCommandHandler_Handle_ConcurrentUpdateConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.PendingPayment)
	cmd, err := commands.NewPayAdvanceCommand(aggregate.ID())
	require.NoError(t, err)

	conflict := errs.NewVersionIsInvalidError("order status", errors.New("status changed"))

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.PendingPayment).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPayAdvanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertExpectations(t)
}
