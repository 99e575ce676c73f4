package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pipeyard/cmd"
	httpin "pipeyard/internal/adapters/in/http"
	"pipeyard/internal/adapters/out/extract"
	miniostore "pipeyard/internal/adapters/out/minio"
	"pipeyard/internal/adapters/out/notify"
	"pipeyard/internal/adapters/out/postgres/loadrepo"
	"pipeyard/internal/adapters/out/postgres/requestrepo"
	"pipeyard/internal/adapters/out/postgres/shipmentrepo"
	"pipeyard/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)
	migrateDB(db, logger)

	store, err := miniostore.NewDocumentStore(
		configs.MinioEndpoint,
		configs.MinioAccessKey,
		configs.MinioSecretKey,
		configs.MinioBucket,
		configs.MinioUseSSL,
	)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	notifier := notify.NewWebhookNotifier(configs.NotifyWebhookURL)
	extractor := extract.NewHTTPExtractor(configs.ExtractorURL)

	app := cmd.NewCompositionRoot(configs, db, store, notifier, extractor, logger)

	jobManager := jobs.NewJobManager(app.CreateProcessManifestsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		MinioEndpoint:    goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey:   goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey:   goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:      goDotEnvVariable("MINIO_BUCKET"),
		MinioUseSSL:      goDotEnvVariable("MINIO_USE_SSL") == "true",
		NotifyWebhookURL: goDotEnvVariable("NOTIFY_WEBHOOK_URL"),
		ExtractorURL:     goDotEnvVariable("EXTRACTOR_URL"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

// migrateDB creates the core tables. The scheduling tables are migrated
// on a best-effort basis: the service runs without them, in which case
// bookings fall back to manual scheduling notifications.
func migrateDB(db *gorm.DB, logger *slog.Logger) {
	err := db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&loadrepo.LoadDTO{},
		&loadrepo.DocumentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TruckDTO{},
		&shipmentrepo.AppointmentDTO{},
	)
	if err != nil {
		logger.Warn("scheduling tables unavailable, bookings will degrade", "error", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateRequestCommandHandler(),
		app.CreateReviewRequestCommandHandler(),
		app.CreateScheduleDeliveryCommandHandler(),
		app.CreateSchedulePickupCommandHandler(),
		app.CreateChangeLoadStatusCommandHandler(),
		app.CreateAttachDocumentCommandHandler(),
		app.CreateGetRequestStatusQueryHandler(),
		app.CreateGetRequestLoadsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
