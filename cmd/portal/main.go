package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/yuanzh/recruit-portal/internal/pkg/config"
	"github.com/yuanzh/recruit-portal/internal/pkg/database"
	"github.com/yuanzh/recruit-portal/internal/pkg/logger"
	nsqpkg "github.com/yuanzh/recruit-portal/internal/pkg/nsq"
	"github.com/yuanzh/recruit-portal/internal/pkg/server"
	"github.com/yuanzh/recruit-portal/services/applications/gateway"
	"github.com/yuanzh/recruit-portal/services/applications/handler"
	httpHandler "github.com/yuanzh/recruit-portal/services/applications/handler/http"
	"github.com/yuanzh/recruit-portal/services/applications/repository"
	"github.com/yuanzh/recruit-portal/services/applications/usecase"
)

func main() {
	configs := config.InitConfig(config.GetEnv("CONFIG_PATH", ".env"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgresClient.Migrate(migrateCtx); err != nil {
		zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
	}

	// Initialize Redis connection for OTP records and rate limiting
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for SMS dispatch events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize gateway, repository, usecase, and handlers
	smsGW := gateway.NewSMSGW(producer)
	appRepo := repository.NewApplicationRepo(configs, postgresClient.GetDB(), redisClient)
	appUC := usecase.NewApplicationUC(appRepo, smsGW, configs)

	appHandler := httpHandler.NewApplicationHandler(appUC, configs.SMS.Debug)
	adminHandler := httpHandler.NewAdminHandler(appUC)
	routeHandler := handler.NewHandler(appHandler, adminHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	routeHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
