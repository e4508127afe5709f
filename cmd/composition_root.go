package cmd

import (
	"log/slog"
	"os"

	"escrow/internal/adapters/out/paymentsim"
	"escrow/internal/adapters/out/postgres"
	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	processor  *paymentsim.Processor
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		processor:  paymentsim.NewProcessor(configs.PaymentSettlementDelay),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) PaymentProcessor() *paymentsim.Processor {
	return c.processor
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreatePaymentLinkCommandHandler() commands.CreatePaymentLinkCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentLinkCommandHandler(f)
}

func (c *CompositionRoot) CreatePayAdvanceCommandHandler() commands.PayAdvanceCommandHandler {
	return commands.NewPayAdvanceCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAgreeToTermsCommandHandler() commands.AgreeToTermsCommandHandler {
	return commands.NewAgreeToTermsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartProductionCommandHandler() commands.StartProductionCommandHandler {
	return commands.NewStartProductionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePayFinalCommandHandler() commands.PayFinalCommandHandler {
	return commands.NewPayFinalCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemindDeadlinesCommandHandler() commands.RemindDeadlinesCommandHandler {
	return commands.NewRemindDeadlinesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	return commands.NewMarkNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateClearNotificationsCommandHandler() commands.ClearNotificationsCommandHandler {
	return commands.NewClearNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateSaveVendorProfileCommandHandler() commands.SaveVendorProfileCommandHandler {
	return commands.NewSaveVendorProfileCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateSubscribeCommandHandler() commands.SubscribeCommandHandler {
	return commands.NewSubscribeCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.vendorUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEarningsQueryHandler() queries.GetEarningsQueryHandler {
	return queries.NewGetEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorProfileQueryHandler() queries.GetVendorProfileQueryHandler {
	return queries.NewGetVendorProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.processor,
		c.CreatePayAdvanceCommandHandler(),
		c.CreatePayFinalCommandHandler(),
		c.CreateRemindDeadlinesCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vendorUoWFactory() commands.VendorUoWFactory {
	return FuncVendorUoWFactory(func() commands.VendorUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncVendorUoWFactory func() commands.VendorUoW

func (f FuncVendorUoWFactory) Create() commands.VendorUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}
