package main

import (
	"log"
	"time"

	"go.uber.org/zap"

	"restaurant-booking/cmd"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/events"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/internal/wire"
	"restaurant-booking/pkg/database"
	"restaurant-booking/pkg/gateway"
	"restaurant-booking/pkg/idempotency"
	"restaurant-booking/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis backs payment idempotency; the store degrades to pass-through
	// when redis is unreachable.
	redisClient := idempotency.NewRedisClient(config.Redis)
	if redisClient == nil {
		logger.Warn("Redis unreachable, payment idempotency disabled")
	} else {
		defer redisClient.Close()
	}
	idemStore := idempotency.NewStore(
		redisClient,
		time.Duration(config.Payment.IdempotencyTTLMin)*time.Minute,
		logger,
	)

	// External payment gateway client
	gw := gateway.NewClient(config.Gateway, logger)

	// Event publisher for the notifier worker
	publisher := events.NewAMQPPublisher(config.AMQP.URL, logger)

	// Initialize all repositories and services
	repos := repository.NewRepository(db, logger)
	service := usecase.NewService(repos, config, gw, idemStore, publisher, logger)

	// Wire all dependencies
	app := wire.Wiring(service, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
