package main

import (
	"fmt"
	"os"
	"time"

	"escrow/cmd"
	httpin "escrow/internal/adapters/in/http"
	"escrow/internal/adapters/out/paymentsim"
	"escrow/internal/adapters/out/postgres/notificationrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/vendorrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		PaymentSettlementDelay: settlementDelay(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func settlementDelay() time.Duration {
	raw := goDotEnvVariable("PAYMENT_SETTLEMENT_DELAY")
	if raw == "" {
		return paymentsim.DefaultSettlementDelay
	}
	delay, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid PAYMENT_SETTLEMENT_DELAY: %v", err)
	}
	return delay
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&vendorrepo.ProfileDTO{},
		&vendorrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreatePaymentLinkCommandHandler(),
		app.CreateAgreeToTermsCommandHandler(),
		app.CreateStartProductionCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateMarkNotificationsReadCommandHandler(),
		app.CreateClearNotificationsCommandHandler(),
		app.CreateSaveVendorProfileCommandHandler(),
		app.CreateSubscribeCommandHandler(),
		app.CreateLoginCommandHandler(),
		app.CreateLogoutCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetEarningsQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
		app.CreateGetVendorProfileQueryHandler(),
		app.PaymentProcessor(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
