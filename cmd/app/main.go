package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/partnerrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KitchenPollSeconds:   goDotEnvIntVariable("KITCHEN_POLL_SECONDS"),
		AlertIntervalSeconds: goDotEnvIntVariable("ALERT_INTERVAL_SECONDS"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer", key)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}, &tablerepo.TableDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	sessionManager := app.CreateSessionManager()
	defer sessionManager.CloseAll()

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreatePickupOrderCommandHandler(),
		app.CreateSetPartnerAvailabilityCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateSetTableStatusCommandHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetPickupQueueQueryHandler(),
		app.CreateGetPartnerDeliveriesQueryHandler(),
		app.CreateTrackOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetPartnersBoardQueryHandler(),
		app.CreateGetTablesQueryHandler(),
		app.CreateCheckDeliveryAvailabilityQueryHandler(),
		sessionManager,
	)

	e := echo.New()
	e.Validator = httpadapter.NewRequestValidator()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
