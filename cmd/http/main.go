package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinichours-service/internal/app/config"
	"clinichours-service/internal/app/delivery/http/controllers"
	"clinichours-service/internal/app/delivery/http/middlewares"
	"clinichours-service/internal/app/delivery/http/routers"
	"clinichours-service/internal/app/drivers/database"
	"clinichours-service/internal/app/drivers/logger"
	"clinichours-service/internal/app/drivers/messaging"
	"clinichours-service/internal/app/services/core/hours"
	"clinichours-service/internal/app/services/core/rules"
	"clinichours-service/internal/app/services/shared/events"
	"clinichours-service/internal/app/services/shared/locker"
	"clinichours-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Events
	eventPublisher, err := events.NewRuleEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize rule event publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Rules
	ruleMongoRepository := rules.NewRuleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	ruleUsecase := rules.NewRuleUsecase(
		ruleMongoRepository,
		redisRepository,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	ruleController := controllers.NewRuleController(bootstrap.Logger, ruleUsecase)

	// Hours
	hoursUsecase := hours.NewHoursUsecase(ruleMongoRepository, redisRepository, bootstrap.Logger)
	hoursController := controllers.NewHoursController(bootstrap.Logger, hoursUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, ruleController, hoursController)
}
