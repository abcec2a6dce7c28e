package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Cientista-Avogadro/docampo/cmd"
	httpadapter "github.com/Cientista-Avogadro/docampo/internal/adapters/in/http"
	"github.com/Cientista-Avogadro/docampo/internal/adapters/out/postgres/orderrepo"
	"github.com/Cientista-Avogadro/docampo/internal/adapters/out/postgres/productrepo"
	"github.com/Cientista-Avogadro/docampo/internal/adapters/out/postgres/userrepo"
	"github.com/Cientista-Avogadro/docampo/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(app.CreateSettleCommissionsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the user repository maps to a conflict
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateUpdateProfileCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateUpdateProductCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateAdvanceFulfillmentCommandHandler(),
		app.CreateAcceptDeliveryCommandHandler(),
		app.CreateStartDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateAuthenticateQueryHandler(),
		app.CreateGetPartyOrdersQueryHandler(),
		app.CreateGetUnassignedDeliveriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
