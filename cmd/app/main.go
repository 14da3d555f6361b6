package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fooddelivery/cmd"
	httpserver "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/deliveryrepo"
	"fooddelivery/internal/adapters/out/postgres/vendorrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		UsersServiceURL:         goDotEnvVariable("USERS_SERVICE_URL"),
		GeoServiceURL:           goDotEnvVariable("GEO_SERVICE_URL"),
		OrdersServiceURL:        goDotEnvVariable("ORDERS_SERVICE_URL"),
		DefaultDeliveryZoneKm:   goDotEnvFloat("DEFAULT_DELIVERY_ZONE_KM"),
		StatusPushRetrySchedule: goDotEnvVariable("STATUS_PUSH_RETRY_SCHEDULE"),
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

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&vendorrepo.VendorDTO{},
		&vendorrepo.VendorCourierDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpserver.NewServer(httpserver.Handlers{
		CreateDelivery:        app.CreateCreateDeliveryCommandHandler(),
		CreateVendor:          app.CreateCreateVendorCommandHandler(),
		SetOrderStatus:        app.CreateSetOrderStatusCommandHandler(),
		AssignOrder:           app.CreateAssignOrderCommandHandler(),
		AssignAnyOrder:        app.CreateAssignAnyOrderCommandHandler(),
		UpdateDeliveryZone:    app.CreateUpdateDeliveryZoneCommandHandler(),
		SaveRating:            app.CreateSaveRatingCommandHandler(),
		UpdateDeliveryDetails: app.CreateUpdateDeliveryDetailsCommandHandler(),
		AddVendorCourier:      app.CreateAddVendorCourierCommandHandler(),
		GetOrderStatus:        app.CreateGetOrderStatusQueryHandler(),
		GetAvailableOrders:    app.CreateGetAvailableOrdersQueryHandler(),
		GetDeliveryDetails:    app.CreateGetDeliveryDetailsQueryHandler(),
		GetDeliveryZone:       app.CreateGetDeliveryZoneQueryHandler(),
		GetRating:             app.CreateGetRatingQueryHandler(),
		GetCourierAnalytics:   app.CreateGetCourierAnalyticsQueryHandler(),
	}, app.CreatePermissionService())

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
