package postgres_test

import (
	"context"
	"testing"
	"time"

	"escrow/internal/adapters/out/postgres"
	"escrow/internal/adapters/out/postgres/notificationrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/vendorrepo"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/notification"
	"escrow/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&vendorrepo.ProfileDTO{},
		&vendorrepo.SessionDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, notifications, vendor_profiles, vendor_sessions",
	).Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "Sara", "+966501234567", "Custom cake",
		kernel.NewMoneyFromFloat(1000), 50, 7,
		"Noura", "Noura Cakes", now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndNotification() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	emitted, err := notification.Compose(
		kernel.NewUUID(), aggregate, notification.EventLinkCreated, aggregate.CreatedAt(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.NotificationRepository().Add(ctx, emitted))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, notificationCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&notificationrepo.NotificationDTO{}).Count(&notificationCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), notificationCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder()))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
