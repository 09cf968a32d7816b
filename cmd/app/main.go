package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundrytrack/cmd"
	"laundrytrack/internal/adapters/out/postgres/orderrepo"
	"laundrytrack/internal/adapters/out/postgres/shelfrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &shelfrepo.ShelfDTO{}); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = app.RehydrateTagPool(ctx); err != nil {
		logger.Error("failed to rehydrate tag pool", "error", err)
		os.Exit(1)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	app.CreateServer().RegisterRoutes(e)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server starting", "port", configs.HTTPPort)
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); serveErr != nil &&
			serveErr != http.ErrServerClosed {
			return serveErr
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return e.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:                    envOrDefault("HTTP_PORT", "8080"),
		DBHost:                      os.Getenv("DB_HOST"),
		DBPort:                      envOrDefault("DB_PORT", "5432"),
		DBUser:                      os.Getenv("DB_USER"),
		DBPassword:                  os.Getenv("DB_PASSWORD"),
		DBName:                      os.Getenv("DB_NAME"),
		DBSslMode:                   envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:                   os.Getenv("KAFKA_HOST"),
		KafkaOrderStatusTopic:       envOrDefault("KAFKA_ORDER_STATUS_TOPIC", "laundry.order.status"),
		TagUniverse:                 os.Getenv("TAG_UNIVERSE"),
		TransitionPolicy:            envOrDefault("TRANSITION_POLICY", "permissive"),
		RequireStaffForStatusUpdate: envOrDefault("REQUIRE_STAFF_FOR_STATUS_UPDATE", "false"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
