package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ordertracking/cmd"
	"ordertracking/internal/adapters/in/http"
	"ordertracking/internal/adapters/out/postgres/orderslot"
	"ordertracking/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.Storage != cmd.StorageMemory {
		gormDB = mustConnectDB(configs)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.SeedDemoData {
		seedDemoData(root, logger)
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Environment variables win over .env; a missing file is fine
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		Storage:              os.Getenv("STORAGE"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		AutoProgressInterval: durationEnv("AUTO_PROGRESS_INTERVAL"),
		SeedDemoData:         os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return 0
	}

	interval, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return interval
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&orderslot.SlotDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func seedDemoData(root *cmd.CompositionRoot, logger *slog.Logger) {
	handler := root.CreateSeedDemoOrdersCommandHandler()
	if err := handler.Handle(context.Background(), commands.NewSeedDemoOrdersCommand()); err != nil {
		logger.Error("Demo data seeding failed", "error", err)
		return
	}
	logger.Info("Demo data seeded")
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = http.NewRequestValidator()

	root.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
