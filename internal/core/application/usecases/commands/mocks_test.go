package commands_test

import (
	"context"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(
	ctx context.Context, aggregate *order.Order, expectedStatus order.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationRepository) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) GetProfile(ctx context.Context) (*vendors.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendors.Profile), args.Error(1)
}

func (m *MockVendorRepository) SaveProfile(ctx context.Context, profile *vendors.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockVendorRepository) IsLoggedIn(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	args := m.Called(ctx, loggedIn)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationUoW struct{ mockTx }

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockVendorUoW struct{ mockTx }

func (m *MockVendorUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	args := m.Called()
	return args.Get(0).(commands.VendorUoW)
}

type MockCreateOrderUoW struct{ mockTx }

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockCreateOrderUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}
