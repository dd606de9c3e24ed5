package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sunnycool038/Decentralized-Delivery-Network/cmd"
	httpin "github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/in/http"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres/courierrepo"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres/disputerepo"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres/ledgerrepo"
	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/adapters/out/postgres/parcelrepo"
	"github.com/sunnycool038/Decentralized-Delivery-Network/pkg/logger"
)

func main() {
	configs := getConfigs()

	log := logger.Init(logger.Options{Level: configs.LogLevel})

	gormDB, err := gorm.Open(postgresdriver.Open(dsn(configs)), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := gormDB.AutoMigrate(
		&parcelrepo.PackageDTO{},
		&courierrepo.CourierDTO{},
		&disputerepo.DisputeDTO{},
		&ledgerrepo.AccountDTO{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database schema")
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build composition root")
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background jobs")
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, log)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		// Containerised deployments pass configuration through the
		// process environment instead of a .env file.
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		EscrowPoolAccount: os.Getenv("ESCROW_POOL_ACCOUNT"),
	}
}

func dsn(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, log zerolog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.NewHTTPErrorHandler(log)

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, configs.JWTSecret)

	log.Info().Str("port", configs.HTTPPort).Msg("starting web server")
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
		log.Fatal().Err(err).Msg("web server stopped")
	}
}
