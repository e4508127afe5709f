package vendorrepo_test

import (
	"context"
	"testing"
	"time"

	"escrow/internal/adapters/out/postgres/vendorrepo"
	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type VendorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *vendorrepo.GormVendorRepository
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&vendorrepo.ProfileDTO{}, &vendorrepo.SessionDTO{}))
}

func (suite *VendorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vendor_profiles, vendor_sessions").Error)
	suite.repository = vendorrepo.NewGormVendorRepository(suite.db)
}

func (suite *VendorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VendorRepositoryIntegrationTestSuite) TestGetProfile_Missing_NotFound() {
	_, err := suite.repository.GetProfile(context.Background())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestSaveProfile_UpsertsSingleRow() {
	ctx := context.Background()

	first, err := vendors.NewProfile("Noura", "noura@example.com", "", "Noura Cakes", vendors.PlanNone)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveProfile(ctx, first))

	second, err := vendors.NewProfile("Noura", "new@example.com", "+966555000111", "Noura Cakes", vendors.PlanPackageB)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.SaveProfile(ctx, second))

	restored, err := suite.repository.GetProfile(ctx)
	suite.Require().NoError(err)
	suite.Equal("new@example.com", restored.Email())
	suite.Equal(vendors.PlanPackageB, restored.SubscriptionPlan())

	var count int64
	suite.Require().NoError(suite.db.Model(&vendorrepo.ProfileDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *VendorRepositoryIntegrationTestSuite) TestLoginFlag_RoundTrip() {
	ctx := context.Background()

	loggedIn, err := suite.repository.IsLoggedIn(ctx)
	suite.Require().NoError(err)
	suite.False(loggedIn)

	suite.Require().NoError(suite.repository.SetLoggedIn(ctx, true))
	loggedIn, err = suite.repository.IsLoggedIn(ctx)
	suite.Require().NoError(err)
	suite.True(loggedIn)

	suite.Require().NoError(suite.repository.SetLoggedIn(ctx, false))
	loggedIn, err = suite.repository.IsLoggedIn(ctx)
	suite.Require().NoError(err)
	suite.False(loggedIn)
}

func TestVendorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(VendorRepositoryIntegrationTestSuite))
}
