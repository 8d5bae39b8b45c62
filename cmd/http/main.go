package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labtrack-service/internal/app/config"
	"labtrack-service/internal/app/delivery/http/controllers"
	"labtrack-service/internal/app/delivery/http/middlewares"
	"labtrack-service/internal/app/delivery/http/routers"
	"labtrack-service/internal/app/drivers/database"
	"labtrack-service/internal/app/drivers/logger"
	"labtrack-service/internal/app/drivers/messaging"
	"labtrack-service/internal/app/drivers/storage"
	"labtrack-service/internal/app/services/core/auth"
	"labtrack-service/internal/app/services/core/bookings"
	"labtrack-service/internal/app/services/core/catalog"
	"labtrack-service/internal/app/services/core/results"
	"labtrack-service/internal/app/services/core/session"
	"labtrack-service/internal/app/services/shared/interpretation"
	"labtrack-service/internal/app/services/shared/locker"
	"labtrack-service/internal/app/services/shared/notification"
	sharedredis "labtrack-service/internal/app/services/shared/redis"
	sharedstorage "labtrack-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	processLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		processLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		processLog.Fatalf("Failed to bootstrap application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		processLog.Fatalf("Failed to shutdown drivers cleanly: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Locker
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Notification
	notificationService, err := notification.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
	)
	if err != nil {
		return err
	}

	// Report archive
	reportArchive := sharedstorage.NewMinioReportArchive(
		bootstrap.Minio,
		bootstrap.InternalConfig.Minio.ReportBucketName,
		bootstrap.Logger,
	)

	// Catalog and result evaluation
	catalogService := catalog.NewCatalogService(bootstrap.Logger)
	resultEvaluator := results.NewResultEvaluator(catalogService)

	// Interpretation provider
	interpretationService := interpretation.NewGeminiService(bootstrap.InternalConfig, bootstrap.Logger)

	// Bookings
	bookingRepository := bookings.NewBookingMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		catalogService,
		resultEvaluator,
		interpretationService,
		lockerService,
		notificationService,
		reportArchive,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, sessionService)

	// Auth
	authUsecase := auth.NewAuthUsecase(sessionService, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Catalog delivery
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogService)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		authController,
		bookingController,
		catalogController,
	)
	return nil
}
