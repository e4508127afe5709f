package commands_test

import (
	"testing"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayFinalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.FinalPaymentPending)
	cmd, err := commands.NewPayFinalCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockOrderUoW)

	var emitted *notification.Notification
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.FinalPaymentPending).Return(nil).Once(),
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

	h := commands.NewPayFinalCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.FinalPaymentDone, aggregate.Status())
	require.True(t, aggregate.Status().IsTerminal())
	require.NotNil(t, aggregate.FinalPaymentAt())
	require.Equal(t, "Sara completed final payment of $500.00", emitted.Message())
	uow.AssertExpectations(t)
}

func TestPayFinalCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, order.FinalPaymentDone)
	cmd, err := commands.NewPayFinalCommand(aggregate.ID())
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

	h := commands.NewPayFinalCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
