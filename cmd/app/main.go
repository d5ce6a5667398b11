package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"courierops/cmd"
	"courierops/internal/adapters/out/postgres/accountrepo"
	"courierops/internal/adapters/out/postgres/applicationrepo"
	"courierops/internal/adapters/out/postgres/driverrepo"
	"courierops/internal/adapters/out/postgres/parcelrepo"
	"courierops/internal/adapters/out/postgres/paymentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager, err := app.CreateJobManager(logger)
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		PlatformFeeRate:        goDotEnvFloat("PLATFORM_FEE_RATE"),
		DriverCommissionRate:   goDotEnvFloat("DRIVER_COMMISSION_RATE"),
		PayoutMethod:           goDotEnvVariable("PAYOUT_METHOD"),
		PayoutSchedule:         goDotEnvVariable("PAYOUT_SCHEDULE"),
		AdvisoryDigestSchedule: goDotEnvVariable("ADVISORY_DIGEST_SCHEDULE"),
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
		log.Fatalf("Invalid float value for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&applicationrepo.ApplicationDTO{},
		&driverrepo.DriverDTO{},
		&parcelrepo.ParcelDTO{},
		&paymentrepo.PaymentDTO{},
		&accountrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
