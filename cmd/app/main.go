package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"instagrow/cmd"
	httpadapter "instagrow/internal/adapters/in/http"
	"instagrow/internal/adapters/out/postgres/orderrepo"
	"instagrow/internal/adapters/out/postgres/packagerepo"
	"instagrow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateGetStatsQueryHandler(), slog.Default())
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// variables come from the environment itself.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      envOrDefault("DB_PASSWORD", "postgres"),
		DBName:          envOrDefault("DB_NAME", "instagrow"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		PixMerchantCity: envOrDefault("PIX_MERCHANT_CITY", "São Paulo"),
		CORSOrigins:     splitOrigins(envOrDefault("CORS_ORIGINS", "*")),
	}
}

// splitOrigins parses the comma-separated CORS_ORIGINS value.
func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &packagerepo.PackageDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreatePackageCommandHandler(),
		app.CreateUpdatePackageCommandHandler(),
		app.CreateRemovePackageCommandHandler(),
		app.CreateSeedCatalogCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllPackagesQueryHandler(),
		app.CreateGetPackageQueryHandler(),
		app.CreateGetStatsQueryHandler(),
	)

	e := echo.New()
	httpadapter.RegisterMiddlewares(e, configs.CORSOrigins)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
